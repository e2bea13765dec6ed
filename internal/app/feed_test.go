package app_test

import (
	"testing"
	"time"

	"tecno-eval-service/internal/app"
	"tecno-eval-service/internal/domain"
)

func TestFeedDeliversToAllSubscribers(t *testing.T) {
	feed := app.NewFeed()

	first, cancelFirst := feed.Subscribe()
	defer cancelFirst()
	second, cancelSecond := feed.Subscribe()
	defer cancelSecond()

	feed.Publish(domain.SubmissionEvent{ParticipantID: 7})

	for _, ch := range []<-chan domain.SubmissionEvent{first, second} {
		select {
		case evt := <-ch:
			if evt.ParticipantID != 7 {
				t.Fatalf("unexpected event %+v", evt)
			}
		case <-time.After(time.Second):
			t.Fatal("expected event delivery")
		}
	}
}

func TestFeedDropsOldestForSlowSubscriber(t *testing.T) {
	feed := app.NewFeed()
	events, cancel := feed.Subscribe()
	defer cancel()

	// Overflow the buffer without reading; the oldest event must give way.
	for i := 1; i <= 9; i++ {
		feed.Publish(domain.SubmissionEvent{ParticipantID: int64(i)})
	}

	evt := <-events
	if evt.ParticipantID != 2 {
		t.Fatalf("expected oldest event dropped, first received %d", evt.ParticipantID)
	}
}

func TestFeedCancelStopsDelivery(t *testing.T) {
	feed := app.NewFeed()
	events, cancel := feed.Subscribe()

	cancel()
	cancel() // idempotent

	feed.Publish(domain.SubmissionEvent{ParticipantID: 1})

	if _, ok := <-events; ok {
		t.Fatal("expected channel closed after cancel")
	}
}
