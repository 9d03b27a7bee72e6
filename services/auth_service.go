package services

import (
	"context"
	"fmt"
	"time"

	"pingly/auth"
	"pingly/domain"
	"pingly/errors"
	"pingly/repositories"
)

type IAuthService interface {
	Register(ctx context.Context, email, username, password string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
}

// Session is what a successful authentication hands back: the identity
// plus the signed token the transport layer expects on every call.
type Session struct {
	UserID string
	Token  string
}

type AuthService struct {
	userRepository repositories.IUserRepository
	profiles       repositories.IProfileRepository
	tokenDuration  time.Duration
}

func NewAuthService(repo repositories.IUserRepository, profiles repositories.IProfileRepository,
	tokenDuration time.Duration) *AuthService {
	return &AuthService{
		userRepository: repo,
		profiles:       profiles,
		tokenDuration:  tokenDuration,
	}
}

// Register creates the account and its public directory profile, then
// issues the initial session token.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (Session, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	}

	// Business rules (email format, username, password complexity) are
	// checked before any expensive cryptographic operation. The
	// validation error is returned as-is so the transport boundary maps
	// it to InvalidArgument rather than blaming the password.
	if err := auth.ValidateRegister(valReq); err != nil {
		return Session{}, err
	}

	// Hashing happens in the service layer so the repository never sees
	// a plain password.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(email, username, hashedPassword)
	if err != nil {
		return Session{}, err // propagates ErrUserAlreadyExists when the email is taken
	}

	// The public directory entry is written right after the account so
	// the user is searchable from their first session.
	if err := s.profiles.UpsertProfile(domain.Profile{ID: userID, Username: username, Email: email}); err != nil {
		return Session{}, fmt.Errorf("profile creation failed: %w", err)
	}

	token, err := auth.GenerateToken(userID, []string{"user"}, s.tokenDuration)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}

	return Session{UserID: userID, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration attacks.
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Roles, s.tokenDuration)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}

	return Session{UserID: user.ID, Token: token}, nil
}
