package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockNotifier blocks delivery until released, so tests can observe that
// Dispatch does not wait for it.
type mockNotifier struct {
	sendFunc func(ctx context.Context, n Notification) error
	started  chan Notification
}

func (m *mockNotifier) Send(ctx context.Context, n Notification) error {
	if m.started != nil {
		m.started <- n
	}
	if m.sendFunc != nil {
		return m.sendFunc(ctx, n)
	}
	return nil
}

func TestDispatcher_Dispatch_DoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	notifier := &mockNotifier{
		started: make(chan Notification, 1),
		sendFunc: func(ctx context.Context, n Notification) error {
			<-release
			return nil
		},
	}
	d := NewDispatcher(notifier)

	done := make(chan struct{})
	go func() {
		d.Dispatch(Notification{Email: "a@b.com", Subject: "hi"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on delivery")
	}

	// Delivery still happens in the background.
	select {
	case n := <-notifier.started:
		if n.Email != "a@b.com" {
			t.Errorf("expected notification email=a@b.com, got %q", n.Email)
		}
	case <-time.After(time.Second):
		t.Fatal("delivery never started")
	}
	close(release)
}

// TestDispatcher_Dispatch_SwallowsFailure verifies a failed delivery is not
// surfaced to the caller.
func TestDispatcher_Dispatch_SwallowsFailure(t *testing.T) {
	notifier := &mockNotifier{
		started: make(chan Notification, 1),
		sendFunc: func(ctx context.Context, n Notification) error {
			return errors.New("smtp down")
		},
	}
	d := NewDispatcher(notifier)

	d.Dispatch(Notification{Email: "a@b.com"})

	select {
	case <-notifier.started:
	case <-time.After(time.Second):
		t.Fatal("delivery never started")
	}
}

func TestSMTPNotifier_Send_MissingCredentials(t *testing.T) {
	n := NewSMTPNotifier("smtp.example.com", "587", "", "", "admin@example.com")

	err := n.Send(context.Background(), Notification{Email: "a@b.com"})
	if err == nil {
		t.Fatal("expected error when credentials are not configured")
	}
}
