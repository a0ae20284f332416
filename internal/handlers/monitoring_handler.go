package handlers

import (
	"net/http"

	"fulfill-backend/internal/monitoring"
	"fulfill-backend/pkg/utils"
)

type MonitoringHandler struct {
	collector *monitoring.Collector
}

func NewMonitoringHandler(collector *monitoring.Collector) *MonitoringHandler {
	return &MonitoringHandler{collector: collector}
}

// GetStats returns database and host resource usage for the ops dashboard
func (h *MonitoringHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.collector.Collect())
}
