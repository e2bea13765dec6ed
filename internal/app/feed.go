package app

import (
	"sync"

	"tecno-eval-service/internal/domain"
)

// Feed fans committed-submission events out to subscribers (the admin
// live feed). Publishing never blocks: a slow subscriber loses its
// oldest pending event instead of stalling the submit path.
type Feed struct {
	mu          sync.Mutex
	subscribers map[chan domain.SubmissionEvent]struct{}
}

func NewFeed() *Feed {
	return &Feed{subscribers: make(map[chan domain.SubmissionEvent]struct{})}
}

// Subscribe returns a channel of submission events. The caller must
// invoke the returned cancel function to avoid leaks.
func (f *Feed) Subscribe() (<-chan domain.SubmissionEvent, func()) {
	ch := make(chan domain.SubmissionEvent, 8)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if _, ok := f.subscribers[ch]; ok {
			delete(f.subscribers, ch)
			close(ch)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers evt to every subscriber, dropping the oldest pending
// event of any full channel.
func (f *Feed) Publish(evt domain.SubmissionEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subscribers {
		select {
		case ch <- evt:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- evt
		}
	}
}
