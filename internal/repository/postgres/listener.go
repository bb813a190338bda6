package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"

	"bizmeet/internal/domain"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// BookingListener bridges postgres LISTEN/NOTIFY to per-event subscriber
// channels. The repository publishes on the booking channel after every
// write; SSE handlers subscribe per event id to push grid refreshes.
type BookingListener struct {
	listener *pq.Listener
	logger   *slog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan domain.BookingChange // eventID -> subscriber id -> channel
}

// NewBookingListener opens a LISTEN connection on the booking channel.
func NewBookingListener(dbURL string, logger *slog.Logger) (*BookingListener, error) {
	l := &BookingListener{
		logger: logger,
		subs:   make(map[string]map[int]chan domain.BookingChange),
	}
	l.listener = pq.NewListener(dbURL, listenerMinReconnect, listenerMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("booking listener connection event", "event", int(ev), "err", err)
		}
	})
	if err := l.listener.Listen(bookingChannel); err != nil {
		return nil, fmt.Errorf("listen on %s: %w", bookingChannel, err)
	}
	return l, nil
}

// Run dispatches notifications until ctx is cancelled. It pings the
// connection during idle periods so dropped connections reconnect.
func (l *BookingListener) Run(ctx context.Context) {
	defer l.listener.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.listener.Notify:
			if n == nil {
				// nil is delivered after a reconnect; subscribers should
				// re-read on the next change rather than here.
				continue
			}
			l.dispatch(n.Extra)
		case <-time.After(listenerPingInterval):
			if err := l.listener.Ping(); err != nil {
				l.logger.Warn("booking listener ping failed", "err", err)
			}
		}
	}
}

func (l *BookingListener) dispatch(payload string) {
	var change domain.BookingChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		l.logger.Warn("booking listener got malformed payload", "payload", payload, "err", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs[change.EventID] {
		select {
		case ch <- change:
		default:
			// Slow subscriber; drop rather than block the dispatcher.
		}
	}
}

// Subscribe registers for changes to one event's booking set. The
// subscription ends when the returned cancel func runs or ctx is done,
// whichever comes first; either way the channel is closed exactly once.
func (l *BookingListener) Subscribe(ctx context.Context, eventID string) (<-chan domain.BookingChange, func(), error) {
	ch := make(chan domain.BookingChange, 8)

	l.mu.Lock()
	l.nextID++
	id := l.nextID
	if l.subs[eventID] == nil {
		l.subs[eventID] = make(map[int]chan domain.BookingChange)
	}
	l.subs[eventID][id] = ch
	l.mu.Unlock()

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if subs, ok := l.subs[eventID]; ok {
			if _, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(l.subs, eventID)
			}
		}
	}
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ch, cancel, nil
}

var _ domain.BookingSubscriber = (*BookingListener)(nil)
