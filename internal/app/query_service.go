package app

import (
	"context"

	"tecno-eval-service/internal/domain"
)

// ReadStore returns persisted rows for the admin view, each in its fixed
// display order.
type ReadStore interface {
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	ListAnswers(ctx context.Context) ([]domain.Answer, error)
	ListQuestionTimes(ctx context.Context) ([]domain.QuestionTime, error)
	ListDatasetRecords(ctx context.Context) ([]domain.DatasetRecord, error)
}

// QueryService is the read-only surface behind the admin endpoints. A nil
// store means no database URL was configured.
type QueryService struct {
	store ReadStore
}

func NewQueryService(store ReadStore) *QueryService {
	return &QueryService{store: store}
}

func (q *QueryService) Participants(ctx context.Context) ([]domain.Participant, error) {
	if q.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return q.store.ListParticipants(ctx)
}

func (q *QueryService) Answers(ctx context.Context) ([]domain.Answer, error) {
	if q.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return q.store.ListAnswers(ctx)
}

func (q *QueryService) QuestionTimes(ctx context.Context) ([]domain.QuestionTime, error) {
	if q.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return q.store.ListQuestionTimes(ctx)
}

func (q *QueryService) DatasetRecords(ctx context.Context) ([]domain.DatasetRecord, error) {
	if q.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return q.store.ListDatasetRecords(ctx)
}
