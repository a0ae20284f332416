package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fulfill-backend/internal/middleware"
	"fulfill-backend/internal/models"
	"fulfill-backend/internal/repositories"
	"fulfill-backend/internal/services"
)

type TOTPHandler struct {
	TOTPService *services.TOTPService
	UserRepo    *repositories.UserRepository
}

func NewTOTPHandler(totpService *services.TOTPService, userRepo *repositories.UserRepository) *TOTPHandler {
	return &TOTPHandler{
		TOTPService: totpService,
		UserRepo:    userRepo,
	}
}

// SetupTOTP initiates 2FA setup - returns secret and QR code
func (h *TOTPHandler) SetupTOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	// Only admins can set up 2FA
	if role != "admin" {
		http.Error(w, "Only admin users can enable 2FA", http.StatusForbidden)
		return
	}

	user, err := h.UserRepo.Get(context.Background(), userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if user.TOTPEnabled {
		http.Error(w, "2FA is already enabled", http.StatusBadRequest)
		return
	}

	response, err := h.TOTPService.GenerateSetup(context.Background(), user)
	if err != nil {
		http.Error(w, "Failed to generate 2FA setup", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// EnableTOTP verifies the code and turns 2FA on for the current user
func (h *TOTPHandler) EnableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.TOTPEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Code == "" {
		http.Error(w, "Verification code is required", http.StatusBadRequest)
		return
	}

	if err := h.TOTPService.VerifyAndEnable(context.Background(), userID, req.Code); err != nil {
		if errors.Is(err, services.ErrInvalidTOTPCode) || errors.Is(err, services.ErrNoTOTPSecret) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to enable 2FA", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "2FA enabled successfully"})
}

// DisableTOTP turns off 2FA after verifying a current code
func (h *TOTPHandler) DisableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.TOTPDisableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Code == "" {
		http.Error(w, "Verification code is required", http.StatusBadRequest)
		return
	}

	if err := h.TOTPService.Disable(context.Background(), userID, req.Code); err != nil {
		if errors.Is(err, services.ErrInvalidTOTPCode) || errors.Is(err, services.ErrTOTPNotEnabled) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to disable 2FA", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "2FA disabled successfully"})
}

// GetStatus returns the 2FA status for the current user
func (h *TOTPHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.UserRepo.Get(context.Background(), userID)
	if err != nil {
		http.Error(w, "Failed to get 2FA status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"enabled": user.TOTPEnabled})
}
