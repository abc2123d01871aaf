package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Token(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/token", h.Token)

		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/token", h.Token)

		uc.EXPECT().Login(gomock.Any(), "maria", "errada").Return("", usecase.ErrInvalidCredentials)

		form := url.Values{"username": {"maria"}, "password": {"errada"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login success returns bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/token", h.Token)

		uc.EXPECT().Login(gomock.Any(), "maria", "senha").Return("signed-token", nil)

		form := url.Values{"username": {"maria"}, "password": {"senha"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp["access_token"] != "signed-token" || resp["token_type"] != "bearer" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate username maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/registrar", h.Register)

		uc.EXPECT().Register(gomock.Any(), "maria", "senha", "").Return(entities.User{}, usecase.ErrUserAlreadyExists)

		body := `{"username":"maria","password":"senha"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/registrar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("register success never leaks the hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/registrar", h.Register)

		uc.EXPECT().Register(gomock.Any(), "maria", "senha", "GERENTE").Return(entities.User{
			ID:           "u-1",
			Username:     "maria",
			PasswordHash: "$2a$10$hash",
			Role:         "GERENTE",
			Active:       true,
		}, nil)

		body := `{"username":"maria","password":"senha","role":"GERENTE"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/registrar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "hash") {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}
	})
}
