package migrations

import (
	_ "embed"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

//go:embed 0001_create_result_tables.sql
var createResultTablesSQL string

//go:embed 0002_create_questions.sql
var createQuestionsSQL string

var Migrations = migrate.NewMigrations()

// questionRow mirrors the questions table for the seed migration.
type questionRow struct {
	bun.BaseModel `bun:"table:questions"`

	Position          int    `bun:"position,pk"`
	Texto             string `bun:"texto,notnull"`
	Componente        string `bun:"componente,notnull"`
	OpcionA           string `bun:"opcion_a,notnull"`
	OpcionB           string `bun:"opcion_b,notnull"`
	OpcionC           string `bun:"opcion_c,notnull"`
	OpcionD           string `bun:"opcion_d,notnull"`
	RespuestaCorrecta string `bun:"respuesta_correcta,notnull"`
	SkillID           int    `bun:"skill_id,notnull"`
	Difficulty        int    `bun:"difficulty,notnull"`
}
