package model

import (
	"encoding/json"
	"testing"
)

func TestParseSkills_LegacyStringArray(t *testing.T) {
	skills, legacy, err := ParseSkills([]byte(`["React","Node.js"]`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !legacy {
		t.Error("expected legacy=true for a string array")
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	if skills[0].Name != "React" || skills[0].Percentage != 75 {
		t.Errorf("unexpected migrated skill: %+v", skills[0])
	}
}

func TestParseSkills_ObjectArray(t *testing.T) {
	skills, legacy, err := ParseSkills([]byte(`[{"name":"React","percentage":90}]`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if legacy {
		t.Error("expected legacy=false for the object form")
	}
	if len(skills) != 1 || skills[0].Percentage != 90 {
		t.Errorf("unexpected skills: %+v", skills)
	}
}

func TestParseSkills_Empty(t *testing.T) {
	skills, legacy, err := ParseSkills([]byte(`[]`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if legacy {
		t.Error("an empty array needs no rewrite")
	}
	if len(skills) != 0 {
		t.Errorf("expected no skills, got %+v", skills)
	}
}

func TestParseSkills_Invalid(t *testing.T) {
	if _, _, err := ParseSkills([]byte(`{"not":"an array"}`)); err == nil {
		t.Fatal("expected error for a non-array value")
	}
}

// TestSkill_UnmarshalJSON_MixedArray verifies decoding a request body where
// old clients still send plain strings.
func TestSkill_UnmarshalJSON_MixedArray(t *testing.T) {
	var skills []Skill
	if err := json.Unmarshal([]byte(`["React",{"name":"Go","percentage":80}]`), &skills); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	if skills[0].Name != "React" || skills[0].Percentage != 75 {
		t.Errorf("unexpected string-form skill: %+v", skills[0])
	}
	if skills[1].Name != "Go" || skills[1].Percentage != 80 {
		t.Errorf("unexpected object-form skill: %+v", skills[1])
	}
}
