package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lectura-cli/internal/models"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     exp.Unix(),
		"iat":     time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return tok
}

func TestSession_BeginEndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := New(path)

	user := &models.User{ID: uuid.New(), Email: "test@example.com", FullName: "Test User"}
	tokens := models.AuthTokens{AccessToken: signedToken(t, time.Now().Add(15*time.Minute)), RefreshToken: "refresh"}

	if err := s.Begin(user, tokens); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if !s.Authenticated() {
		t.Fatal("session should be authenticated after Begin")
	}

	restored, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !restored.Authenticated() {
		t.Fatal("restored session should be authenticated")
	}
	if restored.User() == nil || restored.User().Email != "test@example.com" {
		t.Errorf("restored user mismatch: %+v", restored.User())
	}

	if err := s.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("session should be unauthenticated after End")
	}

	cleared, err := Load(path)
	if err != nil {
		t.Fatalf("Load after End failed: %v", err)
	}
	if cleared.Authenticated() {
		t.Fatal("persisted session should be gone after End")
	}
}

func TestSession_LoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("expected unauthenticated session")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		token   string
		expired bool
	}{
		{"no token", "", true},
		{"garbage token", "not-a-jwt", true},
		{"live token", "", false},
		{"expired token", "", true},
	}
	tests[2].token = signedToken(t, now.Add(10*time.Minute))
	tests[3].token = signedToken(t, now.Add(-10*time.Minute))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New("")
			s.tokens = models.AuthTokens{AccessToken: tc.token}
			if got := s.Expired(now); got != tc.expired {
				t.Errorf("Expired() = %v, want %v", got, tc.expired)
			}
		})
	}
}
