package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sort"
	"time"

	"tecno-eval-service/internal/domain"
	"github.com/uptrace/bun"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = time.Second
)

// ResultWriter persists one submission as a single transaction:
// participant, answers, question times and the dataset projection commit
// or roll back together. The whole attempt (connection acquisition
// included) is retried on transient connection failures with linearly
// increasing backoff; the database/sql pool under bun discards broken
// connections and reopens lazily, so a retry gets a fresh connection.
type ResultWriter struct {
	db          *bun.DB
	maxAttempts int
	backoff     time.Duration
	sleep       func(time.Duration)
}

func NewResultWriter(db *bun.DB) *ResultWriter {
	return &ResultWriter{
		db:          db,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		sleep:       time.Sleep,
	}
}

// SaveSubmission writes the submission and returns the generated
// participant ID. completedAt zero means "use the database clock".
func (w *ResultWriter) SaveSubmission(ctx context.Context, sub domain.Submission, completedAt time.Time) (int64, error) {
	var participantID int64
	err := w.withRetry(ctx, func(ctx context.Context) error {
		id, err := w.saveOnce(ctx, sub, completedAt)
		if err != nil {
			return err
		}
		participantID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return participantID, nil
}

// withRetry runs op up to maxAttempts times. Only transient failures are
// retried; backoff grows linearly (1×, 2×, …).
func (w *ResultWriter) withRetry(ctx context.Context, op func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if !domain.IsTransient(err) || attempt == w.maxAttempts {
			return err
		}
		log.Printf("submission attempt %d/%d failed: %v", attempt, w.maxAttempts, err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.sleep(w.backoff * time.Duration(attempt))
	}
	return err
}

func (w *ResultWriter) saveOnce(ctx context.Context, sub domain.Submission, completedAt time.Time) (int64, error) {
	var participantID int64
	err := w.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		participant := &domain.Participant{
			Nombre:       sub.Participant.Nombre,
			Apellidos:    sub.Participant.Apellidos,
			Semestre:     sub.Participant.Semestre,
			Genero:       sub.Participant.Genero,
			TotalTime:    sub.TotalTime,
			TotalCorrect: sub.TotalCorrect,
			CompletedAt:  completedAt,
		}
		if _, err := tx.NewInsert().Model(participant).Returning("id").Exec(ctx); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
		participantID = participant.ID

		answers := answerRows(participantID, sub)
		if len(answers) > 0 {
			if _, err := tx.NewInsert().Model(&answers).Exec(ctx); err != nil {
				return fmt.Errorf("insert answers: %w", err)
			}
		}

		times := timeRows(participantID, sub)
		if len(times) > 0 {
			if _, err := tx.NewInsert().Model(&times).Exec(ctx); err != nil {
				return fmt.Errorf("insert question times: %w", err)
			}
		}

		dataset := domain.BuildDatasetRows(participantID, sub)
		if len(dataset) > 0 {
			if _, err := tx.NewInsert().Model(&dataset).Exec(ctx); err != nil {
				return fmt.Errorf("insert dataset records: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, classifyWriteError(err)
	}
	return participantID, nil
}

func answerRows(participantID int64, sub domain.Submission) []domain.Answer {
	rows := make([]domain.Answer, 0, len(sub.Answers))
	for _, index := range sortedKeys(sub.Answers) {
		correct := sub.Correctness[index] == 1
		rows = append(rows, domain.Answer{
			ParticipantID: participantID,
			QuestionIndex: index,
			Answer:        sub.Answers[index],
			IsCorrect:     correct,
		})
	}
	return rows
}

func timeRows(participantID int64, sub domain.Submission) []domain.QuestionTime {
	indices := make([]int, 0, len(sub.QuestionTimes))
	for index := range sub.QuestionTimes {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	rows := make([]domain.QuestionTime, 0, len(indices))
	for _, index := range indices {
		rows = append(rows, domain.QuestionTime{
			ParticipantID: participantID,
			QuestionIndex: index,
			Seconds:       sub.QuestionTimes[index].TimeSpent,
		})
	}
	return rows
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
