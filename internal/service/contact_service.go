package service

import (
	"context"

	"github.com/mvicsa/portfolio-backend/internal/model"
)

// ContactService defines the business logic for the contact pipeline:
// submission intake on the public side, triage on the admin side.
type ContactService interface {
	// Submit sanitizes and validates a contact submission, persists it with
	// status "unread" and hands it to the notification dispatcher. The
	// msg.ID and timestamps are populated on success. Returns a
	// *ValidationError for client-correctable input.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns messages matching opts together with the total match
	// count and the per-status breakdown.
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactList, error)

	// UpdateStatus changes the status of a message and returns the updated
	// record. Any status-to-status transition is accepted as long as the
	// target is a known status.
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)
}

// ValidationError marks an error as client-correctable input. Handlers map
// it to a 400 response carrying the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
