package services

import (
	"context"
	"errors"
	"strings"

	"fulfill-backend/internal/auth"
	"fulfill-backend/internal/cache"
	"fulfill-backend/internal/models"
	"fulfill-backend/internal/repositories"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Signup registers a new seller account
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || len(req.Password) < 8 {
		return nil, errors.New("email and a password of at least 8 characters are required")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         "seller",
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, errors.New("could not create account: " + err.Error())
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user. When 2FA is enabled the first step returns a
// short-lived temp token instead of a session token.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, *models.LoginStep1Response, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, errors.New("invalid credentials")
	}
	if !user.IsActive {
		return nil, nil, errors.New("account suspended")
	}

	// Redis absorbs repeat bcrypt verifications for hot dashboard sessions
	if _, ok := cache.GetCachedAuth(ctx, email, req.Password); !ok {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, nil, errors.New("invalid credentials")
		}
		cache.CacheAuth(ctx, email, req.Password, int64(user.ID))
	}

	if user.TOTPEnabled {
		tempToken, err := s.JWTManager.GenerateTempToken(user)
		if err != nil {
			return nil, nil, err
		}
		return nil, &models.LoginStep1Response{
			Requires2FA: true,
			TempToken:   tempToken,
			Message:     "Enter your verification code",
		}, nil
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil, nil
}

// IssueToken generates a session token after a successful 2FA step
func (s *UserService) IssueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) CreateUser(ctx context.Context, u *models.User) error {
	// Hash password if provided
	if u.PasswordHash != "" {
		hashedPassword, err := auth.HashPassword(u.PasswordHash)
		if err != nil {
			return err
		}
		u.PasswordHash = hashedPassword
	}
	return s.Repo.Create(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// UpdateUser updates an existing user
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	// If password is provided, hash it
	if user.PasswordHash != "" {
		hashedPassword, err := auth.HashPassword(user.PasswordHash)
		if err != nil {
			return err
		}
		user.PasswordHash = hashedPassword
	}
	return s.Repo.Update(ctx, user)
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// ToggleActiveStatus flips a user's active flag and returns the new value
func (s *UserService) ToggleActiveStatus(ctx context.Context, id int) (bool, error) {
	return s.Repo.ToggleActiveStatus(ctx, id)
}
