package migrations

import (
	"context"

	"tecno-eval-service/internal/quiz"
	"github.com/uptrace/bun"
)

func init() {
	// Seed the questions table from the embedded catalog. Idempotent:
	// existing positions are left untouched.
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			catalog := quiz.DefaultCatalog()
			rows := make([]questionRow, 0, catalog.Size())
			for i, q := range catalog.Questions() {
				rows = append(rows, questionRow{
					Position:          i,
					Texto:             q.Texto,
					Componente:        q.Componente,
					OpcionA:           q.OpcionA,
					OpcionB:           q.OpcionB,
					OpcionC:           q.OpcionC,
					OpcionD:           q.OpcionD,
					RespuestaCorrecta: q.RespuestaCorrecta,
					SkillID:           q.SkillID,
					Difficulty:        q.Difficulty,
				})
			}
			_, err := db.NewInsert().Model(&rows).On("CONFLICT (position) DO NOTHING").Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DELETE FROM questions`)
			return err
		},
	)
}
