package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"
)

// Notification is the operator-facing payload composed from a submission.
type Notification struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Notifier attempts delivery of a notification over an external channel.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationDispatcher hands a notification off for best-effort delivery
// without blocking the caller.
type NotificationDispatcher interface {
	Dispatch(n Notification)
}

// Dispatcher runs deliveries on detached goroutines with their own timeout.
// Failures are logged and never retried or surfaced to the submitter.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
}

// NewDispatcher creates a Dispatcher for the given notifier.
func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier, timeout: 10 * time.Second}
}

var _ NotificationDispatcher = (*Dispatcher)(nil)

// Dispatch starts delivery in the background and returns immediately.
func (d *Dispatcher) Dispatch(n Notification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.notifier.Send(ctx, n); err != nil {
			slog.Error("contact notification delivery failed",
				"error", err, "sender", n.Email, "subject", n.Subject)
		}
	}()
}

// SMTPNotifier delivers notifications as e-mail to the site operator.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	to       string
}

// NewSMTPNotifier creates an SMTPNotifier. The notification recipient is the
// configured operator address.
func NewSMTPNotifier(host, port, username, password, to string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, username: username, password: password, to: to}
}

var _ Notifier = (*SMTPNotifier)(nil)

// Send composes and sends the operator e-mail. Returns an error when the
// SMTP credentials are not configured.
func (s *SMTPNotifier) Send(_ context.Context, n Notification) error {
	if s.username == "" || s.password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	subject := fmt.Sprintf("New Contact Form Submission: %s", n.Subject)
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, n.Name, n.Email, n.Subject, n.Message)

	msg := []byte("To: " + s.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.username + "\r\n" +
		"Reply-To: " + n.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{s.to}, msg)
}
