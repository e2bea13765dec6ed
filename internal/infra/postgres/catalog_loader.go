package postgres

import (
	"context"
	"fmt"

	"tecno-eval-service/internal/quiz"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader reads the question set from the questions table, seeded
// by the migrations from the embedded default catalog.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) (quiz.Catalog, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT texto, componente, opcion_a, opcion_b, opcion_c, opcion_d, respuesta_correcta, skill_id, difficulty
		 FROM questions ORDER BY position`)
	if err != nil {
		return quiz.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.Texto, &q.Componente, &q.OpcionA, &q.OpcionB, &q.OpcionC, &q.OpcionD, &q.RespuestaCorrecta, &q.SkillID, &q.Difficulty); err != nil {
			return quiz.Catalog{}, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return quiz.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(questions) == 0 {
		return quiz.Catalog{}, fmt.Errorf("questions table is empty; run migrations")
	}
	return quiz.NewCatalog(questions), nil
}
