package session

import (
	"net/http"

	"github.com/SonnyAu/palate-website/config"
	"github.com/alexedwards/scs/v2"
	"go.uber.org/fx"
)

// Manager wraps scs with the cookie settings the site uses. The contact
// anti-forgery token lives in this cookie-backed session, so the session
// lifetime doubles as the token expiry.
type Manager struct {
	*scs.SessionManager
	config config.SessionConfig
}

func ProvideSessionManager(cfg *config.Config) *Manager {
	sessionManager := scs.New()

	sessionManager.Store = NewMemoryStore()
	sessionManager.Lifetime = cfg.Session.MaxAge
	sessionManager.IdleTimeout = cfg.Session.MaxAge
	sessionManager.Cookie.Name = cfg.Session.Name
	sessionManager.Cookie.Path = cfg.Session.Path
	sessionManager.Cookie.Domain = cfg.Session.Domain
	sessionManager.Cookie.Secure = cfg.Session.Secure
	sessionManager.Cookie.HttpOnly = cfg.Session.HttpOnly

	switch cfg.Session.SameSite {
	case "strict":
		sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	case "lax":
		sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	case "none":
		sessionManager.Cookie.SameSite = http.SameSiteNoneMode
	default:
		sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	}

	return &Manager{
		SessionManager: sessionManager,
		config:         cfg.Session,
	}
}

var Module = fx.Module("session",
	fx.Provide(ProvideSessionManager),
)
