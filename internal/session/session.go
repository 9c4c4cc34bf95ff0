package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lectura-cli/internal/models"
)

// ErrNotAuthenticated is returned when an operation needs a live
// session and none exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the process-wide auth context, initialized at login and
// torn down at logout. It is passed explicitly to the components that
// need it rather than read from a global.
type Session struct {
	mu     sync.RWMutex
	path   string
	user   *models.User
	tokens models.AuthTokens
}

// persisted is the on-disk shape of a session between runs.
type persisted struct {
	User   *models.User      `json:"user"`
	Tokens models.AuthTokens `json:"tokens"`
}

func New(path string) *Session {
	return &Session{path: path}
}

// Load restores a previously persisted session. A missing file is not
// an error; it yields an unauthenticated session.
func Load(path string) (*Session, error) {
	s := New(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		// A corrupt token file should not brick the client.
		return s, nil
	}
	s.user = p.User
	s.tokens = p.Tokens
	return s, nil
}

// Begin installs the login result and persists it.
func (s *Session) Begin(user *models.User, tokens models.AuthTokens) error {
	s.mu.Lock()
	s.user = user
	s.tokens = tokens
	s.mu.Unlock()
	return s.save()
}

// UpdateTokens replaces the token pair after a refresh.
func (s *Session) UpdateTokens(tokens models.AuthTokens) error {
	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()
	return s.save()
}

// End clears the session and removes the persisted copy.
func (s *Session) End() error {
	s.mu.Lock()
	s.user = nil
	s.tokens = models.AuthTokens{}
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken != ""
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.RefreshToken
}

// Expired reports whether the access token's exp claim has passed. The
// token is the backend's to verify; the client only reads the claims
// to know when a refresh is due.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	tok := s.tokens.AccessToken
	s.mu.RUnlock()
	if tok == "" {
		return true
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return now.After(exp.Time)
}

func (s *Session) save() error {
	if s.path == "" {
		return nil
	}
	s.mu.RLock()
	p := persisted{User: s.user, Tokens: s.tokens}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	// The file holds bearer tokens; keep it owner-only.
	return os.WriteFile(s.path, data, 0o600)
}
