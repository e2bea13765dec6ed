package app

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"tecno-eval-service/internal/domain"
	"tecno-eval-service/internal/quiz"
)

// SessionRepository abstracts how active evaluation sessions are tracked
// (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// Session accumulates one participant's answers and per-question view
// time across the evaluation wizard. A view clock runs for the question
// currently displayed; leaving it (navigation or completion) folds the
// elapsed wall-clock seconds into that question's total, so revisits
// accumulate instead of overwriting. Entirely in-memory for one session.
type Session struct {
	id          string
	catalog     quiz.Catalog
	participant domain.ParticipantInfo
	now         func() time.Time

	mu        sync.Mutex
	startedAt time.Time
	viewStart time.Time
	current   int
	answers   map[int]string
	seconds   map[int]int
	answered  map[int]bool
	completed bool
}

// NewSession creates a session positioned on question 0 with the view
// clock running.
func NewSession(id string, catalog quiz.Catalog, participant domain.ParticipantInfo) *Session {
	return NewSessionWithClock(id, catalog, participant, time.Now)
}

// NewSessionWithClock allows deterministic timestamps in tests.
func NewSessionWithClock(id string, catalog quiz.Catalog, participant domain.ParticipantInfo, now func() time.Time) *Session {
	start := now()
	return &Session{
		id:          id,
		catalog:     catalog,
		participant: participant,
		now:         now,
		startedAt:   start,
		viewStart:   start,
		answers:     make(map[int]string),
		seconds:     map[int]int{0: 0},
		answered:    make(map[int]bool),
	}
}

// NewSessionID returns a random 16-byte hex identifier.
func NewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// time-derived ID rather than panicking mid-request.
		return hex.EncodeToString([]byte(time.Now().String()))[:32]
	}
	return hex.EncodeToString(buf)
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Select records the chosen option for the current question. The view
// clock keeps running.
func (s *Session) Select(option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return domain.ErrSessionCompleted
	}
	if !quiz.ValidOption(option) {
		return domain.ErrInvalidOption
	}
	s.answers[s.current] = option
	s.answered[s.current] = true
	return nil
}

// Goto moves the wizard to another question, folding the elapsed view
// time into the question being left.
func (s *Session) Goto(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return domain.ErrSessionCompleted
	}
	if index < 0 || index >= s.catalog.Size() {
		return domain.ErrQuestionOutOfRange
	}
	s.flushViewLocked()
	s.current = index
	if _, ok := s.seconds[index]; !ok {
		s.seconds[index] = 0
	}
	return nil
}

// Next advances to the following question.
func (s *Session) Next() error {
	s.mu.Lock()
	next := s.current + 1
	s.mu.Unlock()
	return s.Goto(next)
}

// Prev returns to the previous question.
func (s *Session) Prev() error {
	s.mu.Lock()
	prev := s.current - 1
	s.mu.Unlock()
	return s.Goto(prev)
}

// flushViewLocked adds the running view-clock delta to the current
// question and restarts the clock.
func (s *Session) flushViewLocked() {
	now := s.now()
	delta := int(now.Sub(s.viewStart).Seconds())
	if delta > 0 {
		s.seconds[s.current] += delta
	}
	s.viewStart = now
}

// Complete finalizes the session and assembles the submission payload.
// It fails with a ValidationError while any question is unanswered, and
// the session stays open.
func (s *Session) Complete() (domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return domain.Submission{}, domain.ErrSessionCompleted
	}
	for i := 0; i < s.catalog.Size(); i++ {
		if _, ok := s.answers[i]; !ok {
			return domain.Submission{}, domain.Validationf("all questions must be answered before submitting")
		}
	}
	s.flushViewLocked()
	s.completed = true

	completedAt := s.now()
	totalTime := int(completedAt.Sub(s.startedAt).Seconds())
	return BuildSubmission(s.participant, s.answers, s.seconds, s.answered, totalTime, completedAt, s.catalog), nil
}

// QuestionView is a question as shown to the participant: the correct
// option is withheld.
type QuestionView struct {
	Index      int    `json:"index"`
	Texto      string `json:"texto"`
	Componente string `json:"componente"`
	OpcionA    string `json:"opcion_a"`
	OpcionB    string `json:"opcion_b"`
	OpcionC    string `json:"opcion_c"`
	OpcionD    string `json:"opcion_d"`
	Difficulty int    `json:"difficulty"`
}

// Progress is a read-only snapshot of the wizard state.
type Progress struct {
	SessionID      string       `json:"sessionId"`
	Current        QuestionView `json:"current"`
	TotalQuestions int          `json:"totalQuestions"`
	AnsweredCount  int          `json:"answeredCount"`
	Selected       string       `json:"selected,omitempty"`
	ElapsedTime    int          `json:"elapsedTime"`
	Completed      bool         `json:"completed"`
}

// Progress reports the current state without advancing any clock.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, _ := s.catalog.Question(s.current)
	return Progress{
		SessionID: s.id,
		Current: QuestionView{
			Index:      s.current,
			Texto:      q.Texto,
			Componente: q.Componente,
			OpcionA:    q.OpcionA,
			OpcionB:    q.OpcionB,
			OpcionC:    q.OpcionC,
			OpcionD:    q.OpcionD,
			Difficulty: q.Difficulty,
		},
		TotalQuestions: s.catalog.Size(),
		AnsweredCount:  len(s.answers),
		Selected:       s.answers[s.current],
		ElapsedTime:    int(s.now().Sub(s.startedAt).Seconds()),
		Completed:      s.completed,
	}
}

// Completed reports whether the session has been submitted.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}
