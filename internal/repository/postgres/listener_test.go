package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bizmeet/internal/domain"

	"github.com/stretchr/testify/require"
)

func newTestListener() *BookingListener {
	return &BookingListener{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		subs:   make(map[string]map[int]chan domain.BookingChange),
	}
}

func TestBookingListener_Dispatch(t *testing.T) {
	l := newTestListener()
	ch, cancel, err := l.Subscribe(context.Background(), "ev-1")
	require.NoError(t, err)
	defer cancel()

	l.dispatch(`{"event_id":"ev-1","booking_id":"bk-1","action":"created"}`)

	select {
	case change := <-ch:
		require.Equal(t, "ev-1", change.EventID)
		require.Equal(t, "bk-1", change.BookingID)
		require.Equal(t, domain.BookingCreated, change.Action)
	case <-time.After(time.Second):
		t.Fatal("expected a change on the subscriber channel")
	}
}

func TestBookingListener_DispatchOnlyMatchingEvent(t *testing.T) {
	l := newTestListener()
	ch, cancel, err := l.Subscribe(context.Background(), "ev-other")
	require.NoError(t, err)
	defer cancel()

	l.dispatch(`{"event_id":"ev-1","booking_id":"bk-1","action":"deleted"}`)

	select {
	case change := <-ch:
		t.Fatalf("subscriber for another event got change %+v", change)
	default:
	}
}

func TestBookingListener_DispatchMalformedPayload(t *testing.T) {
	l := newTestListener()
	ch, cancel, err := l.Subscribe(context.Background(), "ev-1")
	require.NoError(t, err)
	defer cancel()

	l.dispatch(`not json`)

	select {
	case change := <-ch:
		t.Fatalf("malformed payload delivered change %+v", change)
	default:
	}
}

func TestBookingListener_CancelClosesChannel(t *testing.T) {
	l := newTestListener()
	ch, cancel, err := l.Subscribe(context.Background(), "ev-1")
	require.NoError(t, err)

	cancel()
	_, open := <-ch
	require.False(t, open)

	// Cancelling twice must not panic or close twice.
	cancel()

	l.dispatch(`{"event_id":"ev-1","booking_id":"bk-1","action":"created"}`)
}

func TestBookingListener_ContextCancelUnsubscribes(t *testing.T) {
	l := newTestListener()
	ctx, cancelCtx := context.WithCancel(context.Background())
	ch, cancel, err := l.Subscribe(ctx, "ev-1")
	require.NoError(t, err)
	defer cancel()

	cancelCtx()

	select {
	case _, open := <-ch:
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancel")
	}
}

func TestBookingListener_SlowSubscriberDoesNotBlock(t *testing.T) {
	l := newTestListener()
	_, cancel, err := l.Subscribe(context.Background(), "ev-1")
	require.NoError(t, err)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			l.dispatch(`{"event_id":"ev-1","booking_id":"bk-1","action":"created"}`)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked on a slow subscriber")
	}
}
