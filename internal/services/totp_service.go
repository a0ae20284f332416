package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"fulfill-backend/internal/models"
	"fulfill-backend/internal/repositories"
)

const totpIssuer = "FulfillOps"

// TOTPService handles 2FA enrolment and verification for admin accounts
type TOTPService struct {
	userRepo *repositories.UserRepository
}

func NewTOTPService(userRepo *repositories.UserRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo}
}

// GenerateSetup creates a new TOTP secret and QR code for a user
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	// Store the secret (not yet enabled)
	if err := s.userRepo.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	// Generate QR code image
	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}
	qrBase64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + qrBase64,
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable verifies a TOTP code and enables 2FA for the user
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return ErrNoTOTPSecret
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}

	return s.userRepo.EnableTOTP(ctx, userID)
}

// VerifyLogin checks a TOTP code during the second login step
func (s *TOTPService) VerifyLogin(ctx context.Context, userID int, code string) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.TOTPEnabled || user.TOTPSecret == "" {
		return nil, ErrTOTPNotEnabled
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return nil, ErrInvalidTOTPCode
	}
	return user, nil
}

// Disable clears a user's 2FA enrolment
func (s *TOTPService) Disable(ctx context.Context, userID int, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TOTPEnabled {
		return ErrTOTPNotEnabled
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return s.userRepo.DisableTOTP(ctx, userID)
}
