package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, tokens)
}

func TestClient_Login(t *testing.T) {
	t.Run("sends form-encoded credentials", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/token", r.URL.Path)
			require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "maria", r.PostFormValue("username"))
			assert.Equal(t, "senha", r.PostFormValue("password"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
		}, nil)

		token, err := c.Login(context.Background(), "maria", "senha")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token.AccessToken)
		assert.Equal(t, "bearer", token.TokenType)
	})

	t.Run("bad credentials map to ErrAuth", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"UNAUTHORIZED","message":"Invalid username or password"}`))
		}, nil)

		_, err := c.Login(context.Background(), "maria", "errada")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAuth)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
		assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
	})
}

func TestClient_BearerHeader(t *testing.T) {
	t.Run("token attached when present", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}, staticToken("tok-1"))

		_, err := c.ListCustomers(context.Background())
		require.NoError(t, err)
	})

	t.Run("no header for empty token", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}, staticToken(""))

		_, err := c.ListCustomers(context.Background())
		require.NoError(t, err)
	})
}

func TestClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"bad request", http.StatusBadRequest, `{"code":"INVALID_REQUEST","message":"Invalid request"}`, ErrValidation},
		{"unauthorized", http.StatusUnauthorized, `{"code":"UNAUTHORIZED","message":"Missing or invalid bearer token"}`, ErrAuth},
		{"not found", http.StatusNotFound, `{"code":"NOT_FOUND","message":"Service order not found"}`, ErrNotFound},
		{"conflict", http.StatusConflict, `{"code":"CONFLICT","message":"Status transition not allowed"}`, ErrConflict},
		{"insufficient stock", http.StatusConflict, `{"code":"INSUFFICIENT_STOCK","message":"Insufficient stock for requested quantity"}`, ErrInsufficientStock},
		{"server error", http.StatusInternalServerError, `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}`, ErrNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}, nil)

			_, err := c.GetWorkOrderDetail(context.Background(), "os-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}

	t.Run("insufficient stock beats the generic conflict class", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"code":"INSUFFICIENT_STOCK","message":"Insufficient stock"}`))
		}, nil)

		_, err := c.AddPartLine(context.Background(), "os-1", AddPartLineInput{PartID: "p-1", Quantity: 5})
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.NotErrorIs(t, err, ErrConflict)
	})
}

func TestClient_Transport(t *testing.T) {
	t.Run("unreachable server maps to ErrNetwork", func(t *testing.T) {
		c := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, nil)

		_, err := c.ListParts(context.Background())
		assert.ErrorIs(t, err, ErrNetwork)
	})

	t.Run("canceled context surfaces as context error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		_, err := c.ListParts(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrNetwork)
	})

	t.Run("garbage body maps to ErrNetwork", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}, nil)

		_, err := c.ListParts(context.Background())
		assert.ErrorIs(t, err, ErrNetwork)
	})
}

func TestClient_WorkOrderCalls(t *testing.T) {
	t.Run("detail totals come from the server", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/os/os-1/detalhes", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id":"os-1","status":"EXECUCAO",
				"pecas":[{"item_id":"l-1","peca_id":"p-1","nome_peca":"pastilha","quantidade":2,"valor_unitario":50,"subtotal":100}],
				"servicos":[{"item_id":"l-2","servico_id":"s-1","descricao_servico":"troca de freio","quantidade":1,"valor_unitario":120,"subtotal":120}],
				"pagamentos":[{"id":"pay-1","ordem_servico_id":"os-1","valor":100}],
				"total_pecas":100,"total_servicos":120,"total_geral":220,"total_pago":100,"saldo_devedor":120
			}`))
		}, staticToken("tok"))

		d, err := c.GetWorkOrderDetail(context.Background(), "os-1")
		require.NoError(t, err)
		assert.Equal(t, 220.0, d.GrandTotal)
		assert.Equal(t, 120.0, d.Balance)
		require.Len(t, d.PartLines, 1)
		assert.Equal(t, 100.0, d.PartLines[0].Subtotal)
	})

	t.Run("status change sends the target status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/os/os-1/status", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"os-1","status":"EXECUCAO"}`))
		}, staticToken("tok"))

		o, err := c.SetWorkOrderStatus(context.Background(), "os-1", StatusExecucao)
		require.NoError(t, err)
		assert.Equal(t, StatusExecucao, o.Status)
	})
}
