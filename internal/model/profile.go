package model

import (
	"encoding/json"
	"time"
)

// migratedSkillPercentage is assigned to skills carried over from the legacy
// string-array format, which had no proficiency value.
const migratedSkillPercentage = 75

// Profile is the single site-owner document backing the public pages.
// The nested shapes are stored as JSONB columns.
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Bio         string       `json:"bio"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location"`
	Avatar      string       `json:"avatar"`
	ResumeURL   string       `json:"resumeUrl"`
	SocialLinks SocialLinks  `json:"socialLinks"`
	Stats       ProfileStats `json:"stats"`
	Skills      []Skill      `json:"skills"`
	Experiences []Experience `json:"experiences"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type ProfileStats struct {
	ProjectsCompleted  int `json:"projectsCompleted"`
	YearsExperience    int `json:"yearsExperience"`
	ClientSatisfaction int `json:"clientSatisfaction"`
}

// Skill is a named skill with a proficiency percentage (0-100).
type Skill struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// UnmarshalJSON accepts both the current object form and the legacy plain
// string form ("React"), which is mapped to the default percentage.
func (s *Skill) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		s.Name = name
		s.Percentage = migratedSkillPercentage
		return nil
	}
	type plain Skill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Skill(p)
	return nil
}

// ParseSkills decodes a JSONB skills column. It returns the decoded skills
// and whether the stored value used the legacy string-array format and
// should be rewritten.
func ParseSkills(raw []byte) ([]Skill, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		skills := make([]Skill, 0, len(legacy))
		for _, name := range legacy {
			skills = append(skills, Skill{Name: name, Percentage: migratedSkillPercentage})
		}
		return skills, len(skills) > 0, nil
	}
	var skills []Skill
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, false, err
	}
	return skills, false, nil
}

// Experience is one entry of the work-history section.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}
