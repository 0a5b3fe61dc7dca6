package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// failNTimesBus fails the first n publishes then succeeds.
type failNTimesBus struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (b *failNTimesBus) Publish(ctx context.Context, event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failures {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *failNTimesBus) Subscribe(eventType Type, handler Handler) {}

func (b *failNTimesBus) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestResilientPublisher_FirstAttemptSucceeds(t *testing.T) {
	inner := &failNTimesBus{failures: 0}
	pub := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	err := pub.Publish(context.Background(), NewTeamCreatedEvent(1, "ironfist"))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	pub.Wait()

	if got := inner.callCount(); got != 1 {
		t.Errorf("Expected 1 publish call, got %d", got)
	}
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	inner := &failNTimesBus{failures: 2}
	pub := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries: 5,
		RetryDelay: time.Millisecond,
	})

	// Caller sees nil even though the first attempt failed
	err := pub.Publish(context.Background(), NewTeamCreatedEvent(1, "ironfist"))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	pub.Wait()

	if got := inner.callCount(); got != 3 {
		t.Errorf("Expected 3 publish calls, got %d", got)
	}
}

func TestResilientPublisher_ExhaustedRetries(t *testing.T) {
	inner := &failNTimesBus{failures: 100}
	pub := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})

	if err := pub.Publish(context.Background(), NewTeamCreatedEvent(1, "ironfist")); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	pub.Wait()

	// initial attempt + 2 retries
	if got := inner.callCount(); got != 3 {
		t.Errorf("Expected 3 publish calls, got %d", got)
	}
}
