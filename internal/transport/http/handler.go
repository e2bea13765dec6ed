package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"tecno-eval-service/internal/app"
	"tecno-eval-service/internal/domain"
)

// Handler exposes the REST surface: the submission endpoint, the four
// admin read endpoints, the CSV export, the hosted session wizard and
// the health check.
type Handler struct {
	submit *app.SubmitService
	query  *app.QueryService
	wizard *app.WizardService
}

func NewHandler(submit *app.SubmitService, query *app.QueryService, wizard *app.WizardService) *Handler {
	return &Handler{submit: submit, query: query, wizard: wizard}
}

// Register mounts all routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.health)
	mux.HandleFunc("POST /api/submit", h.handleSubmit)

	mux.HandleFunc("GET /api/participants", h.handleParticipants)
	mux.HandleFunc("GET /api/answers", h.handleAnswers)
	mux.HandleFunc("GET /api/question-times", h.handleQuestionTimes)
	mux.HandleFunc("GET /api/dataset", h.handleDataset)
	mux.HandleFunc("GET /api/dataset/export.csv", h.handleDatasetCSV)

	mux.HandleFunc("POST /api/sessions", h.handleStartSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.handleSessionProgress)
	mux.HandleFunc("POST /api/sessions/{id}/answer", h.handleSessionAnswer)
	mux.HandleFunc("POST /api/sessions/{id}/goto", h.handleSessionGoto)
	mux.HandleFunc("POST /api/sessions/{id}/complete", h.handleSessionComplete)
}

// health responds regardless of store availability.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, domain.Validationf("malformed JSON payload"))
		return
	}

	participantID, err := h.submit.Submit(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "participantId": participantID})
}

func (h *Handler) handleParticipants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.Participants(r.Context())
	if err != nil {
		writeReadError(w, err, "error fetching participants")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleAnswers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.Answers(r.Context())
	if err != nil {
		writeReadError(w, err, "error fetching answers")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleQuestionTimes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.QuestionTimes(r.Context())
	if err != nil {
		writeReadError(w, err, "error fetching question times")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleDataset(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.DatasetRecords(r.Context())
	if err != nil {
		writeReadError(w, err, "error fetching dataset records")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleDatasetCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.DatasetRecords(r.Context())
	if err != nil {
		writeReadError(w, err, "error fetching dataset records")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dataset.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"user_id", "item_id", "score", "current", "next", "timestamp", "skill_id", "difficulty", "response_time"})
	for _, rec := range rows {
		_ = cw.Write([]string{
			strconv.FormatInt(rec.UserID, 10),
			strconv.Itoa(rec.ItemID),
			strconv.FormatFloat(rec.Score, 'f', -1, 64),
			strconv.Itoa(rec.Current),
			strconv.Itoa(rec.Next),
			strconv.Itoa(rec.Timestamp),
			strconv.Itoa(rec.SkillID),
			strconv.Itoa(rec.Difficulty),
			strconv.Itoa(rec.ResponseTime),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("csv export write failed: %v", err)
	}
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var participant domain.ParticipantInfo
	if err := json.NewDecoder(r.Body).Decode(&participant); err != nil {
		writeError(w, domain.Validationf("malformed JSON payload"))
		return
	}
	progress, err := h.wizard.StartSession(r.Context(), participant)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, progress)
}

func (h *Handler) handleSessionProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.wizard.Progress(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleSessionAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Option string `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.Validationf("malformed JSON payload"))
		return
	}
	progress, err := h.wizard.SelectAnswer(r.PathValue("id"), body.Option)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleSessionGoto(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.Validationf("malformed JSON payload"))
		return
	}
	progress, err := h.wizard.Navigate(r.PathValue("id"), body.Index)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleSessionComplete(w http.ResponseWriter, r *http.Request) {
	result, err := h.wizard.CompleteSession(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Anything unexpected
// is a 500 with the error message, matching the original wire behavior.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrQuestionOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSessionCompleted):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeReadError hides read-path failure details behind a generic
// message; unavailability still surfaces as 503.
func writeReadError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": domain.ErrStoreUnavailable.Error()})
		return
	}
	log.Printf("%s: %v", message, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}
