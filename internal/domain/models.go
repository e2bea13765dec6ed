package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Participant is one completed evaluation: identity plus summary totals.
// Created exactly once per submission and immutable thereafter.
type Participant struct {
	bun.BaseModel `bun:"table:participants"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Nombre       string    `bun:"nombre,notnull" json:"nombre"`
	Apellidos    string    `bun:"apellidos,notnull" json:"apellidos"`
	Semestre     string    `bun:"semestre,notnull" json:"semestre"`
	Genero       string    `bun:"genero,notnull" json:"genero"`
	TotalTime    int       `bun:"total_time,notnull" json:"total_time"`
	TotalCorrect int       `bun:"total_correct,notnull" json:"total_correct"`
	CompletedAt  time.Time `bun:"completed_at,nullzero,notnull,default:now()" json:"completed_at"`
}

// Answer is one selected option for one question of one participant.
type Answer struct {
	bun.BaseModel `bun:"table:answers"`

	ParticipantID int64  `bun:"participant_id,notnull" json:"participant_id"`
	QuestionIndex int    `bun:"question_index,notnull" json:"question_index"`
	Answer        string `bun:"answer,notnull" json:"answer"`
	IsCorrect     bool   `bun:"is_correct,notnull" json:"is_correct"`
}

// QuestionTime is the cumulative seconds a participant spent viewing one
// question, across revisits.
type QuestionTime struct {
	bun.BaseModel `bun:"table:question_times"`

	ParticipantID int64 `bun:"participant_id,notnull" json:"participant_id"`
	QuestionIndex int   `bun:"question_index,notnull" json:"question_index"`
	Seconds       int   `bun:"seconds,notnull" json:"seconds"`
}

// DatasetRecord is the derived, append-only projection consumed by the
// downstream skill-mastery pipeline. Not read by the application itself.
type DatasetRecord struct {
	bun.BaseModel `bun:"table:dataset_records"`

	UserID       int64   `bun:"user_id,notnull" json:"user_id"`
	ItemID       int     `bun:"item_id,notnull" json:"item_id"`
	Score        float64 `bun:"score,notnull" json:"score"`
	Current      int     `bun:"current,notnull" json:"current"`
	Next         int     `bun:"next,notnull" json:"next"`
	Timestamp    int     `bun:"timestamp,notnull" json:"timestamp"`
	SkillID      int     `bun:"skill_id,notnull" json:"skill_id"`
	Difficulty   int     `bun:"difficulty,notnull" json:"difficulty"`
	ResponseTime int     `bun:"response_time,notnull" json:"response_time"`
}

// ParticipantInfo carries the identity fields collected before the quiz
// starts. Field names follow the wire format.
type ParticipantInfo struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Semestre  string `json:"semestre"`
	Genero    string `json:"genero"`
}

// QuestionTiming is the per-question timing entry of the wire payload.
type QuestionTiming struct {
	TimeSpent int  `json:"timeSpent"`
	Answered  bool `json:"answered,omitempty"`
}

// QuestionMeta is the per-question metadata the server needs to build
// dataset rows.
type QuestionMeta struct {
	SkillID    int `json:"skill_id"`
	Difficulty int `json:"difficulty"`
}

// Submission is the full payload of one completed evaluation, assembled
// client-side and written server-side in a single transaction.
type Submission struct {
	Participant   ParticipantInfo        `json:"participant"`
	Answers       map[int]string         `json:"answers"`
	QuestionTimes map[int]QuestionTiming `json:"questionTimes"`
	TotalTime     int                    `json:"totalTime"`
	CompletedAt   string                 `json:"completedAt"`
	TotalCorrect  int                    `json:"totalCorrect"`
	Correctness   map[int]int            `json:"correctness"`
	Questions     []QuestionMeta         `json:"questions"`
}

// SubmissionEvent is the summary broadcast on the live feed after a
// submission commits.
type SubmissionEvent struct {
	ParticipantID int64     `json:"participantId"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos"`
	TotalCorrect  int       `json:"totalCorrect"`
	TotalTime     int       `json:"totalTime"`
	CompletedAt   time.Time `json:"completedAt"`
}
