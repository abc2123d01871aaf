package viewmodel

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"oficina_xpto/pkg/client"
)

// TokenStore persists the bearer token across runs. Load is called once at
// startup; Save on login; Clear on logout.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Session owns the access-token lifecycle: the token is set on successful
// login, cleared on logout, and otherwise never touched. There is no refresh
// flow; an expired token surfaces as ErrAuth on the next request.
//
// Session implements client.TokenSource.
type Session struct {
	mu    sync.RWMutex
	token string
	store TokenStore
}

var _ client.TokenSource = (*Session)(nil)

// NewSession reads any previously stored token. A store read failure is not
// fatal: the user just has to log in again.
func NewSession(store TokenStore) *Session {
	s := &Session{store: store}
	if store != nil {
		if token, err := store.Load(); err == nil {
			s.token = token
		}
	}
	return s
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Login authenticates against the API. On failure nothing is stored and any
// previous token is kept untouched.
func (s *Session) Login(ctx context.Context, api *client.Client, username, password string) error {
	token, err := api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(token.AccessToken); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.store != nil {
		return s.store.Clear()
	}
	return nil
}

// FileTokenStore keeps the token in a plain file, good enough for the
// console front end.
type FileTokenStore struct {
	Path string
}

func (f FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (f FileTokenStore) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

func (f FileTokenStore) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
