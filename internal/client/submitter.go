package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tecno-eval-service/internal/domain"
)

// Outcome is the durable result of one submission attempt.
type Outcome struct {
	ParticipantID int64
	Err           error
}

// Submitter posts assembled submissions to the backend. Completion is
// optimistic: Submit returns immediately and the caller treats the
// session as finished, while the durable outcome arrives asynchronously
// on the returned channel. A failed write is logged and reported there
// instead of being swallowed.
type Submitter struct {
	baseURL string
	client  *http.Client
}

// NewSubmitter builds a Submitter for baseURL (e.g. "http://localhost:8080").
// httpClient may be nil.
func NewSubmitter(baseURL string, httpClient *http.Client) *Submitter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Submitter{baseURL: baseURL, client: httpClient}
}

// Submit fires the network call in the background and returns a channel
// that delivers exactly one Outcome before closing.
func (s *Submitter) Submit(ctx context.Context, sub domain.Submission) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		outcome := s.post(ctx, sub)
		if outcome.Err != nil {
			log.Printf("submission for %s %s not persisted: %v", sub.Participant.Nombre, sub.Participant.Apellidos, outcome.Err)
		}
		ch <- outcome
	}()
	return ch
}

func (s *Submitter) post(ctx context.Context, sub domain.Submission) Outcome {
	body, err := json.Marshal(sub)
	if err != nil {
		return Outcome{Err: fmt.Errorf("encode submission: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/submit", bytes.NewReader(body))
	if err != nil {
		return Outcome{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Outcome{Err: fmt.Errorf("post submission: %w", err)}
	}
	defer resp.Body.Close()

	var decoded struct {
		OK            bool   `json:"ok"`
		ParticipantID int64  `json:"participantId"`
		Error         string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Outcome{Err: fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)}
	}
	if resp.StatusCode != http.StatusOK || !decoded.OK {
		message := decoded.Error
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return Outcome{Err: fmt.Errorf("submission rejected: %s", message)}
	}
	return Outcome{ParticipantID: decoded.ParticipantID}
}
