package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SonnyAu/palate-website/services/templates"
	"github.com/SonnyAu/palate-website/testutils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPagesTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := testutils.GetTestConfig()
	cfg.Templates.Dir = "../templates"

	svc := templates.New(&cfg.Templates)
	require.NoError(t, svc.LoadTemplates())

	e := echo.New()
	e.Renderer = svc.Renderer()

	pages := NewPageHandler()
	e.GET("/", pages.Home)
	e.GET("/scoring", pages.Scoring)
	e.GET("/privacy", pages.Privacy)
	e.GET("/contact", pages.Contact)
	e.GET("/health", pages.Health)

	return e
}

func TestPages(t *testing.T) {
	e := newPagesTestServer(t)

	cases := []struct {
		path     string
		contains string
	}{
		{"/", "Personalized Restaurant Recommendations"},
		{"/scoring", "How Scoring Works"},
		{"/privacy", "Privacy Policy"},
		{"/contact", "contact-form"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contains)
			assert.Contains(t, rec.Body.String(), "PalAte")
		})
	}
}

func TestHealth(t *testing.T) {
	e := newPagesTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
