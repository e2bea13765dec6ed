package postgres

import (
	"context"
	"fmt"

	"tecno-eval-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ReadStore serves the admin read endpoints from Postgres with fixed
// display orderings.
type ReadStore struct {
	pool *pgxpool.Pool
}

func NewReadStore(pool *pgxpool.Pool) *ReadStore {
	return &ReadStore{pool: pool}
}

func (s *ReadStore) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, nombre, apellidos, semestre, genero, total_time, total_correct, completed_at
		 FROM participants ORDER BY completed_at DESC`)
	if err != nil {
		return nil, readError("list participants", err)
	}
	defer rows.Close()

	participants := make([]domain.Participant, 0)
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Apellidos, &p.Semestre, &p.Genero, &p.TotalTime, &p.TotalCorrect, &p.CompletedAt); err != nil {
			return nil, readError("scan participant", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, readError("list participants", err)
	}
	return participants, nil
}

func (s *ReadStore) ListAnswers(ctx context.Context) ([]domain.Answer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT participant_id, question_index, answer, is_correct
		 FROM answers ORDER BY participant_id, question_index`)
	if err != nil {
		return nil, readError("list answers", err)
	}
	defer rows.Close()

	answers := make([]domain.Answer, 0)
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ParticipantID, &a.QuestionIndex, &a.Answer, &a.IsCorrect); err != nil {
			return nil, readError("scan answer", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, readError("list answers", err)
	}
	return answers, nil
}

func (s *ReadStore) ListQuestionTimes(ctx context.Context) ([]domain.QuestionTime, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT participant_id, question_index, seconds
		 FROM question_times ORDER BY participant_id, question_index`)
	if err != nil {
		return nil, readError("list question times", err)
	}
	defer rows.Close()

	times := make([]domain.QuestionTime, 0)
	for rows.Next() {
		var t domain.QuestionTime
		if err := rows.Scan(&t.ParticipantID, &t.QuestionIndex, &t.Seconds); err != nil {
			return nil, readError("scan question time", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, readError("list question times", err)
	}
	return times, nil
}

func (s *ReadStore) ListDatasetRecords(ctx context.Context) ([]domain.DatasetRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, item_id, score, current, next, "timestamp", skill_id, difficulty, response_time
		 FROM dataset_records ORDER BY user_id, item_id`)
	if err != nil {
		return nil, readError("list dataset records", err)
	}
	defer rows.Close()

	records := make([]domain.DatasetRecord, 0)
	for rows.Next() {
		var r domain.DatasetRecord
		if err := rows.Scan(&r.UserID, &r.ItemID, &r.Score, &r.Current, &r.Next, &r.Timestamp, &r.SkillID, &r.Difficulty, &r.ResponseTime); err != nil {
			return nil, readError("scan dataset record", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, readError("list dataset records", err)
	}
	return records, nil
}

// readError keeps the unavailable-vs-query distinction the handlers map
// onto 503 vs 500.
func readError(op string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
