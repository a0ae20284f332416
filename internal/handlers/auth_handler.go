package handlers

import (
	"encoding/json"
	"net/http"

	"fulfill-backend/internal/models"
	"fulfill-backend/internal/services"
)

type AuthHandler struct {
	Service     *services.UserService
	TOTPService *services.TOTPService
}

func NewAuthHandler(s *services.UserService, totpService *services.TOTPService) *AuthHandler {
	return &AuthHandler{
		Service:     s,
		TOTPService: totpService,
	}
}

// Signup handles seller registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authResp, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(authResp)
}

// Login handles the first authentication step
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authResp, step1, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if step1 != nil {
		json.NewEncoder(w).Encode(step1)
		return
	}
	json.NewEncoder(w).Encode(authResp)
}

// Verify2FA handles the second login step for 2FA-enabled accounts
func (h *AuthHandler) Verify2FA(w http.ResponseWriter, r *http.Request) {
	var req models.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	claims, err := h.Service.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		http.Error(w, "Invalid or expired temp token", http.StatusUnauthorized)
		return
	}

	user, err := h.TOTPService.VerifyLogin(r.Context(), claims.UserID, req.Code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	authResp, err := h.Service.IssueToken(user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResp)
}
