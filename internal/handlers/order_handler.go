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

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

// viewerRole derives the progress viewer role from the authenticated user
func viewerRole(r *http.Request) progress.ViewerRole {
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == "admin" {
		return progress.RoleAdmin
	}
	return progress.RoleSeller
}

// ListOrders returns dashboard rows with combined progress vectors.
// Sellers only see their own orders; admins see everything.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	sellerID := 0
	if viewerRole(r) == progress.RoleSeller {
		sellerID, _ = middleware.GetUserIDFromContext(r.Context())
	}

	summaries, err := h.Service.ListOrders(r.Context(), sellerID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// CreateOrder creates an order with its lines
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), &req, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetOrderProgress returns the full progress payload for one order. The
// optional ?view=combined|item-wise toggle overrides the role default; an
// order with a single line always renders combined.
func (h *OrderHandler) GetOrderProgress(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	requested := progress.ViewMode(r.URL.Query().Get("view"))
	payload, err := h.Service.GetOrderProgress(r.Context(), id, viewerRole(r), requested)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// UpdateOrder updates order header fields
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.Service.GetOrder(r.Context(), id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if req.CustomerName != "" {
		order.CustomerName = req.CustomerName
	}
	if req.Status != "" {
		order.Status = req.Status
	}
	order.Notes = req.Notes

	if err := h.Service.UpdateOrder(r.Context(), order); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// UpdateLineStatus moves an order line to a new lifecycle stage
func (h *OrderHandler) UpdateLineStatus(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.Atoi(mux.Vars(r)["line_id"])
	if err != nil {
		http.Error(w, "Invalid line ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateLineStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	line, err := h.Service.UpdateLineStatus(r.Context(), lineID, req.LifecycleStatus)
	if err != nil {
		if err == services.ErrUnknownLifecycle {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(line)
}
