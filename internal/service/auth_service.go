package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"visitreg/internal/config"
	"visitreg/internal/dto"
	"visitreg/internal/infra"
	"visitreg/internal/model"
	"visitreg/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ResolveIdentity(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens infra.TokenStore
	cfg    *config.Config
}

func NewAuthService(users repository.UserRepository, tokens infra.TokenStore, cfg *config.Config) AuthService {
	return &authService{users: users, tokens: tokens, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, token, user.ID); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

// Logout revokes the token. Revoking an unknown token succeeds — logout is
// idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *authService) ResolveIdentity(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return user, nil
}

// newToken returns a 256-bit random opaque bearer token, hex-encoded.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
