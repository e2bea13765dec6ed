package quiz

import (
	"context"

	"tecno-eval-service/internal/domain"
)

// Question is one multiple-choice item of the evaluation. Exactly one
// option is correct; SkillID and Difficulty feed the dataset projection.
type Question struct {
	Texto             string `json:"texto"`
	Componente        string `json:"componente"`
	OpcionA           string `json:"opcion_a"`
	OpcionB           string `json:"opcion_b"`
	OpcionC           string `json:"opcion_c"`
	OpcionD           string `json:"opcion_d"`
	RespuestaCorrecta string `json:"respuesta_correcta"`
	SkillID           int    `json:"skill_id"`
	Difficulty        int    `json:"difficulty"`
}

// Options are the valid answer letters.
var Options = []string{"a", "b", "c", "d"}

// ValidOption reports whether opt is one of the answer letters.
func ValidOption(opt string) bool {
	for _, o := range Options {
		if o == opt {
			return true
		}
	}
	return false
}

// Catalog is the ordered, fixed question set of the evaluation.
type Catalog struct {
	questions []Question
}

// NewCatalog wraps an ordered question slice.
func NewCatalog(questions []Question) Catalog {
	return Catalog{questions: questions}
}

// Size is the number of questions every submission must answer.
func (c Catalog) Size() int { return len(c.questions) }

// Question returns the item at index (0-based).
func (c Catalog) Question(index int) (Question, bool) {
	if index < 0 || index >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[index], true
}

// CorrectOption returns the correct letter for index, or "" if out of range.
func (c Catalog) CorrectOption(index int) string {
	q, ok := c.Question(index)
	if !ok {
		return ""
	}
	return q.RespuestaCorrecta
}

// Metadata returns the per-question skill/difficulty slice in order, as
// carried on the submission payload.
func (c Catalog) Metadata() []domain.QuestionMeta {
	meta := make([]domain.QuestionMeta, len(c.questions))
	for i, q := range c.questions {
		meta[i] = domain.QuestionMeta{SkillID: q.SkillID, Difficulty: q.Difficulty}
	}
	return meta
}

// Questions returns a copy of the ordered question set.
func (c Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// CatalogLoader fetches the question set from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (Catalog, error)
}
