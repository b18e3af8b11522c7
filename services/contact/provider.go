package contact

import (
	"github.com/SonnyAu/palate-website/config"
	"github.com/SonnyAu/palate-website/services/logging"
	mailsvc "github.com/SonnyAu/palate-website/services/mail"
	"github.com/SonnyAu/palate-website/session"
	"go.uber.org/fx"
)

func ProvideTokenStore(sessions *session.Manager) *TokenStore {
	return NewTokenStore(sessions)
}

func ProvideLimiter(cfg *config.Config) Limiter {
	return NewMemoryLimiter(cfg.Contact.RateLimit, cfg.Contact.RateWindow)
}

func ProvideContactService(cfg *config.Config, tokens *TokenStore, limiter Limiter, mailer *mailsvc.Service, logger *logging.Service) *Service {
	return NewService(&cfg.Contact, &cfg.Mail, tokens, limiter, mailer, logger)
}

var Module = fx.Module("contact",
	fx.Provide(ProvideTokenStore),
	fx.Provide(ProvideLimiter),
	fx.Provide(ProvideContactService),
)
