package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/security"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testTokenIssuer() *security.TokenIssuer {
	return security.NewTokenIssuer("test-secret", time.Hour)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("blank credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testTokenIssuer())
		_, err := uc.Login(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user looks like bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, testTokenIssuer())

		repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.Login(context.Background(), "ghost", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, testTokenIssuer())

		hash, err := security.HashPassword("certa")
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(entities.User{Username: "maria", PasswordHash: hash, Active: true}, nil)

		_, err = uc.Login(context.Background(), "maria", "errada")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, testTokenIssuer())

		hash, err := security.HashPassword("senha")
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(entities.User{Username: "maria", PasswordHash: hash, Active: false}, nil)

		_, err = uc.Login(context.Background(), "maria", "senha")
		if !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})

	t.Run("login success returns parsable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		issuer := testTokenIssuer()
		uc := NewAuthUseCase(repo, issuer)

		hash, err := security.HashPassword("senha")
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(entities.User{ID: "u-1", Username: "maria", PasswordHash: hash, Role: "GERENTE", Active: true}, nil)

		token, err := uc.Login(context.Background(), " maria ", "senha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := issuer.Parse(token)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if claims.Subject != "maria" || claims.Role != "GERENTE" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testTokenIssuer())
		_, err := uc.Register(context.Background(), "maria", "abc", "")
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, testTokenIssuer())

		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(entities.User{Username: "maria"}, nil)

		_, err := uc.Register(context.Background(), "maria", "senha", "")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("register success defaults role and hashes password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, testTokenIssuer())

		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Role != "ATENDENTE" || !u.Active {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.PasswordHash == "senha" || !security.CheckPasswordHash("senha", u.PasswordHash) {
					t.Fatalf("expected bcrypt hash of the password")
				}
				return u, nil
			},
		)

		if _, err := uc.Register(context.Background(), "maria", "senha", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
