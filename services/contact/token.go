package contact

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/SonnyAu/palate-website/session"
)

const tokenSessionKey = "contact_form_token"

// TokenStore issues and consumes the single-use anti-forgery token. The
// token is bound to the caller's cookie-backed session; issuing a new one
// overwrites the old, so at most one token per session is ever valid.
type TokenStore struct {
	sessions *session.Manager
}

func NewTokenStore(sessions *session.Manager) *TokenStore {
	return &TokenStore{sessions: sessions}
}

// Issue writes a fresh random token into the session and returns it. The
// token expires with the session cookie.
func (s *TokenStore) Issue(ctx context.Context) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate form token: %w", err)
	}

	token := hex.EncodeToString(buf)
	s.sessions.Put(ctx, tokenSessionKey, token)
	return token, nil
}

// Consume removes the stored token and reports whether the submitted value
// matched it. The delete happens regardless of the outcome, so a token is
// spent by its first validation attempt; a replay always fails. PopString is
// atomic per session, so only one concurrent caller can see a match.
func (s *TokenStore) Consume(ctx context.Context, token string) bool {
	stored := s.sessions.PopString(ctx, tokenSessionKey)
	return stored != "" && stored == token
}
