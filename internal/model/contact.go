package model

import "time"

// Contact message statuses. The triage endpoint accepts any-to-any
// transitions; only membership in this set is enforced.
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidStatus reports whether s is one of the known message statuses.
func ValidStatus(s string) bool {
	return s == StatusUnread || s == StatusRead || s == StatusReplied
}

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IP        string    `json:"ip"`
	Status    string    `json:"status"` // "unread" | "read" | "replied"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages.
type ContactListOptions struct {
	// Status filters by message status: "", "all", "unread", "read", "replied".
	// Empty string and "all" return all messages.
	Status string
	// Search matches case-insensitively against name, email, subject and
	// message. Empty string disables the filter.
	Search string
	Limit  int
	Offset int
}

// ContactCounts is the per-status breakdown returned alongside listings.
type ContactCounts struct {
	Unread  int `json:"unread"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
	Total   int `json:"total"`
}

// ContactList bundles a page of messages with the total match count and the
// per-status breakdown.
type ContactList struct {
	Messages []*ContactMessage
	Total    int
	Counts   ContactCounts
}
