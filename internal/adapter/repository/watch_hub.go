package repository

import (
	"context"
	"sync"

	"lendr/internal/domain/repository"
)

// watchHub fans store change events out to every active Watch channel.
// Slow subscribers drop events rather than block a mutation.
type watchHub struct {
	mu       sync.Mutex
	watchers map[chan repository.Event]struct{}
}

func newWatchHub() *watchHub {
	return &watchHub{
		watchers: make(map[chan repository.Event]struct{}),
	}
}

func (h *watchHub) subscribe(ctx context.Context) <-chan repository.Event {
	ch := make(chan repository.Event, 16)

	h.mu.Lock()
	h.watchers[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.watchers, ch)
		h.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (h *watchHub) publish(event repository.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.watchers {
		select {
		case ch <- event:
		default:
		}
	}
}
