package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventContactReceived, func(ctx context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "evt-1", Type: EventContactReceived})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)
}

func TestDispatcherSkipsOtherTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventComplaintFiled, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventContactReceived})
	assert.False(t, called)
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	secondCalled := false
	d.Subscribe(EventLeaveDecided, func(ctx context.Context, event Event) error {
		return errors.New("first handler failed")
	})
	d.Subscribe(EventLeaveDecided, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventLeaveDecided})
	assert.NoError(t, err)
	assert.True(t, secondCalled)
}
