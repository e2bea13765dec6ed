package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"tecno-eval-service/internal/domain"
)

// WizardService hosts evaluation sessions for thin clients: start,
// answer, navigate, complete. Completing a session assembles the payload
// and hands it to the write coordinator.
type WizardService struct {
	sessions SessionRepository
	catalog  CatalogRepository
	submit   *SubmitService
	now      func() time.Time
}

func NewWizardService(sessions SessionRepository, catalog CatalogRepository, submit *SubmitService) *WizardService {
	return &WizardService{sessions: sessions, catalog: catalog, submit: submit, now: time.Now}
}

// StartSession validates the participant identity and opens a session on
// question 0 with the view clock running.
func (w *WizardService) StartSession(ctx context.Context, participant domain.ParticipantInfo) (Progress, error) {
	if participant.Nombre == "" || participant.Apellidos == "" || participant.Semestre == "" || participant.Genero == "" {
		return Progress{}, domain.Validationf("participant nombre, apellidos, semestre and genero are required")
	}
	catalog, err := w.catalog.Catalog(ctx)
	if err != nil {
		return Progress{}, fmt.Errorf("load catalog: %w", err)
	}

	session := NewSessionWithClock(NewSessionID(), catalog, participant, w.now)
	w.sessions.Put(session)
	return session.Progress(), nil
}

// Progress returns the wizard snapshot for a session.
func (w *WizardService) Progress(id string) (Progress, error) {
	session, ok := w.sessions.Get(id)
	if !ok {
		return Progress{}, domain.ErrSessionNotFound
	}
	return session.Progress(), nil
}

// SelectAnswer records an option for the session's current question.
func (w *WizardService) SelectAnswer(id, option string) (Progress, error) {
	session, ok := w.sessions.Get(id)
	if !ok {
		return Progress{}, domain.ErrSessionNotFound
	}
	if err := session.Select(option); err != nil {
		return Progress{}, err
	}
	return session.Progress(), nil
}

// Navigate moves the session to the given question index.
func (w *WizardService) Navigate(id string, index int) (Progress, error) {
	session, ok := w.sessions.Get(id)
	if !ok {
		return Progress{}, domain.ErrSessionNotFound
	}
	if err := session.Goto(index); err != nil {
		return Progress{}, err
	}
	return session.Progress(), nil
}

// CompletionResult summarizes a finished session. Saved is false when the
// store rejected or could not persist the submission; completion is still
// reported so the participant sees their result, matching the original
// availability-over-consistency behavior, but the outcome is explicit
// here instead of swallowed.
type CompletionResult struct {
	ParticipantID  int64 `json:"participantId,omitempty"`
	Saved          bool  `json:"saved"`
	TotalCorrect   int   `json:"totalCorrect"`
	TotalQuestions int   `json:"totalQuestions"`
	TotalTime      int   `json:"totalTime"`
}

// CompleteSession finalizes the session and submits it. An incomplete
// session fails with a ValidationError and stays open.
func (w *WizardService) CompleteSession(ctx context.Context, id string) (CompletionResult, error) {
	session, ok := w.sessions.Get(id)
	if !ok {
		return CompletionResult{}, domain.ErrSessionNotFound
	}

	sub, err := session.Complete()
	if err != nil {
		return CompletionResult{}, err
	}
	w.sessions.Delete(id)

	result := CompletionResult{
		TotalCorrect:   sub.TotalCorrect,
		TotalQuestions: len(sub.Answers),
		TotalTime:      sub.TotalTime,
	}

	participantID, err := w.submit.Submit(ctx, sub)
	if err != nil {
		log.Printf("session %s completed but submission not persisted: %v", id, err)
		return result, nil
	}
	result.ParticipantID = participantID
	result.Saved = true
	return result, nil
}
