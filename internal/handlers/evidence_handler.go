package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fulfill-backend/internal/services"
)

type EvidenceHandler struct {
	Service *services.EvidenceService
}

func NewEvidenceHandler(s *services.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{Service: s}
}

// PresignUpload issues a PUT URL for one new evidence image.
// Query: order_line_id, type, filename.
func (h *EvidenceHandler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		http.Error(w, "Evidence store not configured", http.StatusServiceUnavailable)
		return
	}

	lineID, err := strconv.Atoi(r.URL.Query().Get("order_line_id"))
	if err != nil {
		http.Error(w, "Invalid order_line_id", http.StatusBadRequest)
		return
	}
	qcType := r.URL.Query().Get("type")
	filename := r.URL.Query().Get("filename")
	if qcType == "" || filename == "" {
		http.Error(w, "type and filename are required", http.StatusBadRequest)
		return
	}

	key := h.Service.NewObjectKey(lineID, qcType, filename)
	url, err := h.Service.PresignUpload(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"key": key, "url": url})
}

// PresignDownload issues a GET URL for a stored evidence image
func (h *EvidenceHandler) PresignDownload(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		http.Error(w, "Evidence store not configured", http.StatusServiceUnavailable)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	url, err := h.Service.PresignDownload(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
