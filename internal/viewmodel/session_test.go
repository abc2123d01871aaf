package viewmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"oficina_xpto/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServerURL(t *testing.T, handler http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func tokenHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "maria" || r.PostForm.Get("password") != "s3nha" {
			writeAPIError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "usuário ou senha inválidos")
			return
		}
		json.NewEncoder(w).Encode(client.Token{AccessToken: "tok-abc", TokenType: "bearer"})
	})
	return mux
}

func TestSession_LoginStoresToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := FileTokenStore{Path: path}

	s := NewSession(store)
	assert.False(t, s.Authenticated())

	api := newViewClient(t, tokenHandler(t))
	require.NoError(t, s.Login(context.Background(), api, "maria", "s3nha"))

	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-abc", s.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened := NewSession(store)
	assert.Equal(t, "tok-abc", reopened.Token(), "token survives a restart")
}

func TestSession_LoginFailureStoresNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewSession(FileTokenStore{Path: path})

	api := newViewClient(t, tokenHandler(t))
	err := s.Login(context.Background(), api, "maria", "errada")
	require.ErrorIs(t, err, client.ErrAuth)

	assert.False(t, s.Authenticated())
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSession_Logout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := FileTokenStore{Path: path}
	require.NoError(t, store.Save("tok-abc"))

	s := NewSession(store)
	require.True(t, s.Authenticated())

	require.NoError(t, s.Logout())
	assert.False(t, s.Authenticated())
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	require.NoError(t, s.Logout(), "clearing an already empty store is fine")
}

func TestSession_IsTokenSourceForClient(t *testing.T) {
	var seen string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pecas/", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]client.Part{})
	})
	srv := newTestServerURL(t, mux)

	s := NewSession(nil)
	api := client.New(client.Config{BaseURL: srv, Timeout: 5 * time.Second}, s)

	_, err := api.ListParts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seen, "no header before login")

	store := FileTokenStore{Path: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, store.Save("tok-abc"))
	api = client.New(client.Config{BaseURL: srv, Timeout: 5 * time.Second}, NewSession(store))

	_, err = api.ListParts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", seen)
}

func TestFileTokenStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-abc\n"), 0o600))

	token, err := FileTokenStore{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}
