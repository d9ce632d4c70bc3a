package model

import "time"

// Project is a portfolio entry shown on the public projects section.
type Project struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Image            string    `json:"image"`
	Technologies     []string  `json:"technologies"`
	GitHubURL        string    `json:"githubUrl,omitempty"`
	LiveURL          string    `json:"liveUrl,omitempty"`
	Featured         bool      `json:"featured"`
	Order            int       `json:"order"`
	Category         string    `json:"category"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ProjectListOptions carries the public listing filters.
type ProjectListOptions struct {
	// Featured, when non-nil, filters on the featured flag.
	Featured *bool
	// Category filters by exact category name. Empty string disables it.
	Category string
}
