package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) render(c echo.Context, template, title string) error {
	return c.Render(http.StatusOK, template, map[string]any{
		"Title": title,
		"Year":  time.Now().Year(),
	})
}

func (h *PageHandler) Home(c echo.Context) error {
	return h.render(c, "home.html", "PalAte - Personalized Restaurant Recommendations")
}

func (h *PageHandler) Scoring(c echo.Context) error {
	return h.render(c, "scoring.html", "How Scoring Works - PalAte")
}

func (h *PageHandler) Privacy(c echo.Context) error {
	return h.render(c, "privacy.html", "Privacy Policy - PalAte")
}

func (h *PageHandler) Contact(c echo.Context) error {
	return h.render(c, "contact.html", "Contact Us - PalAte")
}

func (h *PageHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
