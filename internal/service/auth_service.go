package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
	"clinic-management-backend/pkg/utils"

	"github.com/rs/zerolog"
)

// UserStore is the persistence surface the auth service needs.
// Implemented by repository.UserRepository.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users  UserStore
	audit  AuditLogger
	logger zerolog.Logger
}

func NewAuthService(users UserStore, audit AuditLogger, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		audit:  audit,
		logger: logger,
	}
}

// SignupInput carries the fields collected at signup.
type SignupInput struct {
	Username string
	Password string
	Role     string
	Name     string
	Email    string
}

// LoginResult bundles the authenticated user with an API access token.
// The opaque browser session is issued separately by the handler.
type LoginResult struct {
	User        *models.User
	AccessToken string
}

// Signup creates a new account. The role is fixed at creation.
func (s *AuthService) Signup(in SignupInput) (*models.User, error) {
	existing, err := s.users.FindByUsername(in.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("Username already exists.")
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		PasswordHash: passwordHash,
		Role:         in.Role,
		Name:         in.Name,
		Email:        in.Email,
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("user signed up")
	_ = s.audit.CreateAuditLog(&user.ID, "user_signup",
		fmt.Sprintf("User %s signed up as %s", user.Username, user.Role))

	return user, nil
}

// Login authenticates a user and issues an API access token. Unknown
// username and wrong password return the same message.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, errors.New("Invalid credentials.")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("Invalid credentials.")
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user logged in")
	_ = s.audit.CreateAuditLog(&user.ID, "user_login",
		fmt.Sprintf("User %s logged in", user.Username))

	return &LoginResult{User: user, AccessToken: accessToken}, nil
}
