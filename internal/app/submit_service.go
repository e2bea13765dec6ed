package app

import (
	"context"
	"fmt"
	"time"

	"tecno-eval-service/internal/domain"
	"tecno-eval-service/internal/quiz"
)

// ResultStore persists one validated submission atomically and returns
// the generated participant ID.
type ResultStore interface {
	SaveSubmission(ctx context.Context, sub domain.Submission, completedAt time.Time) (int64, error)
}

// CatalogRepository loads the question set (static or cached from the store).
type CatalogRepository interface {
	Catalog(ctx context.Context) (quiz.Catalog, error)
}

// SubmitService is the write coordinator: it validates the payload,
// normalizes the completion timestamp, hands the submission to the store
// for the transactional write, and publishes a feed event on commit.
type SubmitService struct {
	store   ResultStore
	catalog CatalogRepository
	feed    *Feed
	now     func() time.Time
}

func NewSubmitService(store ResultStore, catalog CatalogRepository, feed *Feed) *SubmitService {
	return &SubmitService{store: store, catalog: catalog, feed: feed, now: time.Now}
}

// Submit persists one submission. Validation failures are rejected before
// any store interaction; store failures never leave partial rows.
func (s *SubmitService) Submit(ctx context.Context, sub domain.Submission) (int64, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	if err := ValidateSubmission(sub, catalog.Size()); err != nil {
		return 0, err
	}
	if s.store == nil {
		return 0, domain.ErrStoreUnavailable
	}

	completedAt := normalizeCompletedAt(sub.CompletedAt)
	id, err := s.store.SaveSubmission(ctx, sub, completedAt)
	if err != nil {
		return 0, err
	}

	if s.feed != nil {
		eventAt := completedAt
		if eventAt.IsZero() {
			eventAt = s.now()
		}
		s.feed.Publish(domain.SubmissionEvent{
			ParticipantID: id,
			Nombre:        sub.Participant.Nombre,
			Apellidos:     sub.Participant.Apellidos,
			TotalCorrect:  sub.TotalCorrect,
			TotalTime:     sub.TotalTime,
			CompletedAt:   eventAt,
		})
	}
	return id, nil
}

// ValidateSubmission checks payload completeness against the fixed
// question-set size. It never touches the store.
func ValidateSubmission(sub domain.Submission, size int) error {
	p := sub.Participant
	if p.Nombre == "" || p.Apellidos == "" || p.Semestre == "" || p.Genero == "" {
		return domain.Validationf("participant nombre, apellidos, semestre and genero are required")
	}
	if len(sub.Answers) == 0 || len(sub.QuestionTimes) == 0 || len(sub.Correctness) == 0 || len(sub.Questions) == 0 {
		return domain.Validationf("missing required fields for complete evaluation")
	}
	if len(sub.Answers) < size {
		return domain.Validationf(fmt.Sprintf("evaluation not complete: all %d questions must be answered", size))
	}
	if len(sub.Answers) != size {
		return domain.Validationf(fmt.Sprintf("answers must cover exactly question indices 0..%d", size-1))
	}
	for i := 0; i < size; i++ {
		answer, ok := sub.Answers[i]
		if !ok {
			return domain.Validationf(fmt.Sprintf("answers must cover exactly question indices 0..%d", size-1))
		}
		if !quiz.ValidOption(answer) {
			return domain.Validationf(fmt.Sprintf("answer for question %d is not a valid option", i))
		}
	}
	if len(sub.Questions) != len(sub.Answers) {
		return domain.Validationf("mismatch between number of answers and questions data")
	}
	correct := 0
	for i := 0; i < size; i++ {
		if sub.Correctness[i] == 1 {
			correct++
		}
	}
	if correct != sub.TotalCorrect {
		return domain.Validationf("totalCorrect does not match the correctness map")
	}
	return nil
}

// normalizeCompletedAt parses the client timestamp; a zero time tells the
// store to substitute the database's current time.
func normalizeCompletedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
