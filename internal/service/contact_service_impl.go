package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/repository"
)

// Field length ceilings for contact submissions.
const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxSubjectLength = 200
	maxMessageLength = 2000
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	jsSchemePat   = regexp.MustCompile(`(?i)javascript:`)
	eventTokenPat = regexp.MustCompile(`(?i)on\w+=`)
	angleBrackets = strings.NewReplacer("<", "", ">", "")
)

// sanitizeField applies the defense-in-depth denylist: trim whitespace,
// strip angle brackets, the javascript: scheme and inline event-handler
// tokens. This is not a full HTML sanitizer.
func sanitizeField(s string) string {
	s = strings.TrimSpace(s)
	s = angleBrackets.Replace(s)
	s = jsSchemePat.ReplaceAllString(s, "")
	s = eventTokenPat.ReplaceAllString(s, "")
	return s
}

// validateSubmission checks the sanitized fields in order; the first failing
// check wins.
func validateSubmission(msg *model.ContactMessage) *ValidationError {
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if len([]rune(msg.Name)) > maxNameLength {
		return &ValidationError{Message: "Name is too long (max 100 characters)"}
	}
	if len([]rune(msg.Email)) > maxEmailLength {
		return &ValidationError{Message: "Email is too long"}
	}
	if len([]rune(msg.Subject)) > maxSubjectLength {
		return &ValidationError{Message: "Subject is too long (max 200 characters)"}
	}
	if len([]rune(msg.Message)) > maxMessageLength {
		return &ValidationError{Message: "Message is too long (max 2000 characters)"}
	}
	if !emailPattern.MatchString(msg.Email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	return nil
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	dispatcher NotificationDispatcher
}

// NewContactService creates a ContactService backed by the given repository
// and notification dispatcher.
func NewContactService(repo repository.ContactRepository, dispatcher NotificationDispatcher) ContactService {
	return &contactServiceImpl{repo: repo, dispatcher: dispatcher}
}

// Submit sanitizes, validates and persists a contact submission, then hands
// it to the notification dispatcher. Dispatch is fire-and-forget: it runs on
// a detached goroutine and its outcome never affects the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Name = sanitizeField(msg.Name)
	msg.Email = sanitizeField(msg.Email)
	msg.Subject = sanitizeField(msg.Subject)
	msg.Message = sanitizeField(msg.Message)

	if verr := validateSubmission(msg); verr != nil {
		return verr
	}

	now := time.Now().UTC()
	msg.Status = model.StatusUnread
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}

	s.dispatcher.Dispatch(Notification{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	})
	return nil
}

// List returns messages matching opts plus the total and per-status counts.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactList, error) {
	messages, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ContactList{Messages: messages, Total: total, Counts: counts}, nil
}

// UpdateStatus changes the status of a message. The target status must be
// one of the known values; transitions are otherwise unrestricted.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	if !model.ValidStatus(status) {
		return nil, &ValidationError{Message: "Invalid status"}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
