package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fulfill-backend/internal/middleware"
	"fulfill-backend/internal/models"
	"fulfill-backend/internal/progress"
	"fulfill-backend/internal/services"
)

type QcHandler struct {
	Service *services.QcService
}

func NewQcHandler(s *services.QcService) *QcHandler {
	return &QcHandler{Service: s}
}

// Submit opens a review cycle with the seller's evidence
func (h *QcHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	sub, err := h.Service.Submit(r.Context(), &req, userID)
	if err != nil {
		switch err {
		case services.ErrInvalidQcType, services.ErrQcGateLocked, services.ErrOpenSubmissionExists:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sub)
}

// Approve records an approval decision
func (h *QcHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject records a rejection decision with its note
func (h *QcHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *QcHandler) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	qcID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	var req models.DecideQcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reviewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	sub, err := h.Service.Decide(r.Context(), qcID, approve, req.Note, reviewerID)
	if err != nil {
		switch err {
		case services.ErrRejectNoteRequired, services.ErrQcGateLocked:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sub)
}

// AppendImages attaches more evidence keys to an open submission
func (h *QcHandler) AppendImages(w http.ResponseWriter, r *http.Request) {
	qcID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	var req models.AppendQcImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sub, err := h.Service.AppendImages(r.Context(), qcID, req.ImageKeys)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sub)
}

// History returns a line's full submission sequence plus rejection summary
func (h *QcHandler) History(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.Atoi(mux.Vars(r)["line_id"])
	if err != nil {
		http.Error(w, "Invalid line ID", http.StatusBadRequest)
		return
	}

	subs, rejection, err := h.Service.History(r.Context(), lineID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Submissions []*models.QcSubmission `json:"submissions"`
		Rejection   progress.RejectionInfo `json:"rejection"`
	}{subs, rejection})
}
