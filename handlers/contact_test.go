package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SonnyAu/palate-website/services/contact"
	mailsvc "github.com/SonnyAu/palate-website/services/mail"
	"github.com/SonnyAu/palate-website/session"
	"github.com/SonnyAu/palate-website/testutils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactTestServer(t *testing.T) (*echo.Echo, *testutils.MockMailClient) {
	t.Helper()

	cfg := testutils.GetTestConfig()
	manager := session.ProvideSessionManager(cfg)

	mock := &testutils.MockMailClient{}
	mailer, err := mailsvc.NewServiceWithClient(&cfg.Mail, nil, mock)
	require.NoError(t, err)

	tokens := contact.NewTokenStore(manager)
	limiter := contact.NewMemoryLimiter(cfg.Contact.RateLimit, cfg.Contact.RateWindow)
	service := contact.NewService(&cfg.Contact, &cfg.Mail, tokens, limiter, mailer, nil)

	e := echo.New()
	e.Use(session.Middleware(manager))

	handler := NewContactHandler(service)
	e.POST("/contact/token", handler.Token)
	e.POST("/contact/submit", handler.Submit)

	return e, mock
}

func issueToken(t *testing.T, e *echo.Echo) (string, []*http.Cookie) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/contact/token", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body["token"])

	return body["token"], rec.Result().Cookies()
}

func submitForm(t *testing.T, e *echo.Echo, payload map[string]any, cookies []*http.Cookie) contact.Result {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact/submit", bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "every normalised outcome uses 200")

	var result contact.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return result
}

func validPayload(token string) map[string]any {
	return map[string]any{
		"name":      "Jo Lin",
		"email":     "jo@example.com",
		"subject":   "Feature idea",
		"message":   "I would love a dark mode option please.",
		"honeypot":  "",
		"formToken": token,
		"timestamp": time.Now().Add(-5 * time.Second).Format(time.RFC3339),
	}
}

func TestContactTokenEndpoint(t *testing.T) {
	e, _ := newContactTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/contact/token", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.GreaterOrEqual(t, len(body["token"]), 10)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "token issuance must set the session cookie")

	sessionCookie := cookies[0]
	assert.Equal(t, "palate_session", sessionCookie.Name)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, sessionCookie.SameSite)
	assert.Equal(t, "/", sessionCookie.Path)
}

func TestContactSubmitScenarios(t *testing.T) {
	t.Run("valid submission is accepted and emailed", func(t *testing.T) {
		e, mock := newContactTestServer(t)
		token, cookies := issueToken(t, e)

		result := submitForm(t, e, validPayload(token), cookies)

		assert.True(t, result.Success)
		assert.Contains(t, result.Message, "Thank you")

		sent := mock.Sent()
		require.Len(t, sent, 1)
		raw := testutils.RenderMessage(t, sent[0])
		assert.Contains(t, raw, "Reply-To: jo@example.com")
	})

	t.Run("filled honeypot is rejected generically", func(t *testing.T) {
		e, mock := newContactTestServer(t)
		token, cookies := issueToken(t, e)

		payload := validPayload(token)
		payload["honeypot"] = "spam"

		result := submitForm(t, e, payload, cookies)

		assert.False(t, result.Success)
		assert.Nil(t, result.Errors)
		assert.Empty(t, mock.Sent())
	})

	t.Run("zero elapsed time is rejected as too quick", func(t *testing.T) {
		e, mock := newContactTestServer(t)
		token, cookies := issueToken(t, e)

		payload := validPayload(token)
		payload["timestamp"] = time.Now().Format(time.RFC3339)

		result := submitForm(t, e, payload, cookies)

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "too quick")
		assert.Empty(t, mock.Sent())
	})

	t.Run("double submit with one token succeeds once", func(t *testing.T) {
		e, mock := newContactTestServer(t)
		token, cookies := issueToken(t, e)

		first := submitForm(t, e, validPayload(token), cookies)
		assert.True(t, first.Success)

		second := submitForm(t, e, validPayload(token), cookies)
		assert.False(t, second.Success)

		assert.Len(t, mock.Sent(), 1)
	})

	t.Run("out-of-bounds fields report per-field errors", func(t *testing.T) {
		e, mock := newContactTestServer(t)
		token, cookies := issueToken(t, e)

		payload := validPayload(token)
		payload["name"] = "J"
		payload["message"] = "short"

		result := submitForm(t, e, payload, cookies)

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Errors["name"])
		assert.NotEmpty(t, result.Errors["message"])
		assert.Empty(t, mock.Sent())
	})

	t.Run("malformed body is normalised to the generic shape", func(t *testing.T) {
		e, mock := newContactTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/contact/submit", bytes.NewReader([]byte("{not json")))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result contact.Result
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Message)
		assert.Empty(t, mock.Sent())
	})

	t.Run("a fresh token after success allows a follow-up", func(t *testing.T) {
		e, mock := newContactTestServer(t)

		token, cookies := issueToken(t, e)
		first := submitForm(t, e, validPayload(token), cookies)
		require.True(t, first.Success)

		token2, cookies2 := issueToken(t, e)
		second := submitForm(t, e, validPayload(token2), cookies2)
		assert.True(t, second.Success)

		assert.Len(t, mock.Sent(), 2)
	})
}
