package session

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"perfilapp/pkg/claims"
	"perfilapp/pkg/generator"
	"perfilapp/pkg/user"
)

const idLength = 24

// Manager issues, restores and destroys server-side sessions. The store
// is the single authority on whether a caller is logged in; the cookie
// only carries a signed copy of the session ID.
type Manager struct {
	Repo   Repository
	Secret []byte
}

func NewManager(repo Repository, secret string) *Manager {
	return &Manager{Repo: repo, Secret: []byte(secret)}
}

// Create opens an authenticated session for u. The submitted form
// fields are kept on the session for re-display.
func (m *Manager) Create(u *user.User, ref UserRef) (*Session, error) {
	sessionID, err := generator.GenerateRandomID(idLength)
	if err != nil {
		return nil, fmt.Errorf("SessionID gen error: %s", err)
	}

	now := time.Now().UTC()
	s := &Session{
		ID:        sessionID,
		UserID:    u.ID,
		IsAuth:    true,
		UserRef:   ref,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	if err := m.Repo.Save(s); err != nil {
		return nil, fmt.Errorf("failed to create session: %s", err)
	}

	return s, nil
}

// Restore looks the token up in the store. An unknown or expired token
// restores to nil, never an error the caller has to distinguish from
// "not logged in".
func (m *Manager) Restore(id string) (*Session, error) {
	s, err := m.Repo.Find(id)
	if err != nil {
		return nil, err
	}
	if s == nil || !s.ExpiresAt.After(time.Now().UTC()) {
		return nil, nil
	}
	return s, nil
}

// Destroy drops the store entry. Destroying a session that is already
// gone is fine.
func (m *Manager) Destroy(id string) error {
	return m.Repo.Delete(id)
}

// SignToken wraps the session ID in an HS256 JWT so the cookie is
// tamper-evident, the same job the session secret did for the signed
// sid cookie before.
func (m *Manager) SignToken(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().UTC().Unix(),
		},
	})
	return token.SignedString(m.Secret)
}

// ParseToken recovers the session ID from a cookie value. Anything
// unsigned, tampered with or signed differently is rejected.
func (m *Manager) ParseToken(value string) (string, error) {
	parsed := &claims.Claims{}

	token, err := jwt.ParseWithClaims(value, parsed, func(t *jwt.Token) (interface{}, error) {
		method, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, errors.New("bad sign method")
		}
		return m.Secret, nil
	})
	if err != nil || !token.Valid || parsed.SessionID == "" {
		return "", errors.New("invalid session token")
	}

	return parsed.SessionID, nil
}
