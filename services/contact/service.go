package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/SonnyAu/palate-website/config"
	"github.com/SonnyAu/palate-website/services/logging"
	mailsvc "github.com/SonnyAu/palate-website/services/mail"
	"github.com/mileusna/useragent"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Rejection messages. Everything except the schema stage is deliberately
// generic so a caller cannot tell which heuristic rejected it.
const (
	msgFieldErrors  = "Please fix the errors in the form"
	msgGeneric      = "There was a problem with your submission. Please try again."
	msgInvalidToken = "Invalid form submission. Please refresh the page and try again."
	msgTooQuick     = "Your submission was too quick. Please try again."
	msgTooMany      = "Too many submissions. Please try again later."
	msgSendFailed   = "There was a problem submitting your form. Please try again later."
	msgThanks       = "Thank you for your message! We'll get back to you soon."
)

// GenericFailure is the normalised result handlers fall back to when a
// request cannot even be decoded.
func GenericFailure() Result {
	return Result{Success: false, Message: msgGeneric}
}

type Service struct {
	config  *config.ContactConfig
	mailCfg *config.MailConfig
	tokens  *TokenStore
	limiter Limiter
	mailer  *mailsvc.Service
	logger  *logging.Service

	now func() time.Time
}

func NewService(cfg *config.ContactConfig, mailCfg *config.MailConfig, tokens *TokenStore, limiter Limiter, mailer *mailsvc.Service, logger *logging.Service) *Service {
	return &Service{
		config:  cfg,
		mailCfg: mailCfg,
		tokens:  tokens,
		limiter: limiter,
		mailer:  mailer,
		logger:  logger,
		now:     time.Now,
	}
}

// IssueToken creates a fresh anti-forgery token for the caller's session.
func (s *Service) IssueToken(ctx context.Context) (string, error) {
	return s.tokens.Issue(ctx)
}

// Submit runs the submission through the pipeline. Stages run in order and
// short-circuit on the first failure: schema validation, honeypot, token,
// fill-time, rate limit, dispatch. Every outcome, including a panic, is
// normalised to a Result; nothing propagates to the handler as a fault.
func (s *Service) Submit(ctx context.Context, sub *Submission, meta RequestMeta) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("contact pipeline panic", zap.Any("panic", rec))
			result = Result{Success: false, Message: msgSendFailed}
		}
	}()

	if fieldErrors := validateSubmission(sub); fieldErrors != nil {
		return Result{Success: false, Message: msgFieldErrors, Errors: fieldErrors}
	}

	if sub.Honeypot != "" {
		// indistinguishable from any other generic rejection
		s.logger.Warn("honeypot field filled", zap.String("identity", meta.Identity))
		return Result{Success: false, Message: msgGeneric}
	}

	if !s.tokens.Consume(ctx, sub.FormToken) {
		return Result{Success: false, Message: msgInvalidToken}
	}

	submittedAt, err := parseTimestamp(sub.Timestamp)
	if err != nil {
		return Result{Success: false, Message: msgGeneric}
	}
	if s.now().Sub(submittedAt) < s.config.MinFillTime {
		return Result{Success: false, Message: msgTooQuick}
	}

	if !s.limiter.Allow(meta.Identity) {
		return Result{Success: false, Message: msgTooMany}
	}

	if err := s.dispatch(ctx, sub, meta); err != nil {
		s.logger.Error("contact dispatch failed",
			zap.Error(err),
			zap.String("identity", meta.Identity))
		return Result{Success: false, Message: msgSendFailed}
	}

	return Result{Success: true, Message: msgThanks}
}

func (s *Service) dispatch(ctx context.Context, sub *Submission, meta RequestMeta) error {
	msg := s.mailer.NewMessage()

	if err := msg.To(s.mailCfg.ToAddress); err != nil {
		return fmt.Errorf("failed to set TO address: %w", err)
	}
	if err := msg.ReplyTo(sub.Email); err != nil {
		return fmt.Errorf("failed to set Reply-To address: %w", err)
	}

	msg.Subject(fmt.Sprintf("%s %s", s.config.SubjectPrefix, sub.Subject))

	body := fmt.Sprintf("From: %s <%s>\n\n%s", sub.Name, sub.Email, sub.Message)
	if client := clientSummary(meta.UserAgent); client != "" {
		body += "\n\n--\nClient: " + client
	}
	msg.SetBodyString(gomail.TypeTextPlain, body)

	return s.mailer.Send(ctx, msg)
}

// clientSummary condenses the User-Agent into a "Browser x.y on OS" line for
// the recipient.
func clientSummary(userAgentString string) string {
	if userAgentString == "" {
		return ""
	}

	ua := useragent.Parse(userAgentString)
	if ua.Name == "" {
		return ""
	}

	summary := ua.Name
	if ua.Version != "" {
		summary += " " + ua.Version
	}
	if ua.OS != "" {
		summary += " on " + ua.OS
	}
	return summary
}
