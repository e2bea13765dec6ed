package http

import (
	"log"
	"net/http"

	"tecno-eval-service/internal/app"
	"tecno-eval-service/internal/domain"
	"github.com/gorilla/websocket"
)

// FeedHandler streams committed-submission summaries to admin clients
// over a websocket.
type FeedHandler struct {
	feed     *app.Feed
	upgrader websocket.Upgrader
}

func NewFeedHandler(feed *app.Feed) *FeedHandler {
	return &FeedHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type feedMessage struct {
	Type    string                 `json:"type"`
	Payload domain.SubmissionEvent `json:"payload"`
}

// ServeWS upgrades the request and forwards feed events until the client
// disconnects.
func (h *FeedHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	events, cancel := h.feed.Subscribe()
	defer cancel()

	// Reader goroutine only detects disconnects; no inbound messages are
	// expected on the feed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(feedMessage{Type: "submission", Payload: evt}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
