package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"fulfill-backend/internal/services"
	"fulfill-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// GetQcReport returns the full QC snapshot for an order as JSON
func (h *ReportHandler) GetQcReport(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	data, err := h.Service.GetQcReportData(context.Background(), orderID)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, data)
}

// DownloadQcReportPDF streams the QC report for an order as a PDF
func (h *ReportHandler) DownloadQcReportPDF(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	data, err := h.Service.GetQcReportData(context.Background(), orderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	pdfBytes, err := h.Service.GenerateQcPDF(data)
	if err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=qc-report-%d.pdf", orderID))
	w.Write(pdfBytes)
}
