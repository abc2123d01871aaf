package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/security"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("username already registered")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrUserInactive       = errors.New("user is inactive")
)

// IAuthUseCase exposes the token flow: credential login and user
// registration. Token validity is time-bound only; there is no refresh flow.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, role string) (entities.User, error)
}

type AuthUseCase struct {
	userRepo interfaces.IUserRepository
	tokens   *security.TokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(userRepo interfaces.IUserRepository, tokens *security.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// users and wrong passwords are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user.Username == "" || !security.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	if !user.Active {
		return "", ErrUserInactive
	}

	return u.tokens.Generate(user)
}

func (u *AuthUseCase) Register(ctx context.Context, username, password, role string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 4 {
		return entities.User{}, ErrInvalidUserInput
	}
	if role == "" {
		role = "ATENDENTE"
	}

	if existing, err := u.userRepo.GetByUsername(ctx, username); err != nil {
		return entities.User{}, err
	} else if existing.Username != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	return u.userRepo.Create(ctx, user)
}
