package app_test

import (
	"context"
	"errors"
	"testing"

	"tecno-eval-service/internal/app"
	"tecno-eval-service/internal/domain"
	"tecno-eval-service/internal/infra/memory"
)

func newWizardFixture(store app.ResultStore) *app.WizardService {
	catalogRepo := staticCatalogRepo{fixtureCatalog()}
	submit := app.NewSubmitService(store, catalogRepo, nil)
	return app.NewWizardService(memory.NewSessionStore(), catalogRepo, submit)
}

func TestWizardFullFlow(t *testing.T) {
	ctx := context.Background()
	store := &fakeResultStore{}
	wizard := newWizardFixture(store)

	progress, err := wizard.StartSession(ctx, fixtureParticipant())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if progress.Current.Index != 0 || progress.TotalQuestions != 3 {
		t.Fatalf("unexpected initial progress %+v", progress)
	}

	id := progress.SessionID
	answers := []string{"a", "d", "c"}
	for i, a := range answers {
		if _, err := wizard.Navigate(id, i); err != nil {
			t.Fatalf("navigate %d: %v", i, err)
		}
		if _, err := wizard.SelectAnswer(id, a); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}

	result, err := wizard.CompleteSession(ctx, id)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !result.Saved {
		t.Fatal("expected submission to be persisted")
	}
	if result.ParticipantID != 1 || result.TotalCorrect != 2 || result.TotalQuestions != 3 {
		t.Fatalf("unexpected completion result %+v", result)
	}
	if store.calls != 1 {
		t.Fatalf("expected one store call, got %d", store.calls)
	}

	// The session is gone after completion.
	if _, err := wizard.Progress(id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session to be removed, got %v", err)
	}
}

func TestWizardStartRequiresParticipant(t *testing.T) {
	wizard := newWizardFixture(&fakeResultStore{})

	_, err := wizard.StartSession(context.Background(), domain.ParticipantInfo{Nombre: "ANA"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWizardIncompleteSessionStaysOpen(t *testing.T) {
	ctx := context.Background()
	wizard := newWizardFixture(&fakeResultStore{})

	progress, err := wizard.StartSession(ctx, fixtureParticipant())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := progress.SessionID

	if _, err := wizard.SelectAnswer(id, "a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := wizard.CompleteSession(ctx, id); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := wizard.Progress(id); err != nil {
		t.Fatalf("expected session to survive failed completion, got %v", err)
	}
}

func TestWizardCompletionSurvivesStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &fakeResultStore{err: errors.New("database down")}
	wizard := newWizardFixture(store)

	progress, err := wizard.StartSession(ctx, fixtureParticipant())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := progress.SessionID
	for i, a := range []string{"a", "b", "c"} {
		if _, err := wizard.Navigate(id, i); err != nil {
			t.Fatalf("navigate: %v", err)
		}
		if _, err := wizard.SelectAnswer(id, a); err != nil {
			t.Fatalf("select: %v", err)
		}
	}

	result, err := wizard.CompleteSession(ctx, id)
	if err != nil {
		t.Fatalf("expected completion to report results despite store failure, got %v", err)
	}
	if result.Saved {
		t.Fatal("expected Saved=false when the write fails")
	}
	if result.TotalCorrect != 3 {
		t.Fatalf("expected score still reported, got %+v", result)
	}
}

func TestWizardUnknownSession(t *testing.T) {
	wizard := newWizardFixture(&fakeResultStore{})

	if _, err := wizard.Progress("missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := wizard.SelectAnswer("missing", "a"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := wizard.CompleteSession(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
