package handlers

import (
	"net/http"

	"github.com/SonnyAu/palate-website/services/contact"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	service *contact.Service
}

func NewContactHandler(service *contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Token issues a fresh single-use form token bound to the caller's session
// cookie. Called once per form render, including after a successful submit.
func (h *ContactHandler) Token(c echo.Context) error {
	token, err := h.service.IssueToken(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Unable to prepare the form. Please try again later.",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// Submit runs the contact pipeline. Every outcome is returned as the same
// {success, message, errors?} shape with a 200 status; the body, not the
// status code, is the contract.
func (h *ContactHandler) Submit(c echo.Context) error {
	var sub contact.Submission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusOK, contact.GenericFailure())
	}

	meta := contact.RequestMeta{
		Identity:  c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}

	result := h.service.Submit(c.Request().Context(), &sub, meta)
	return c.JSON(http.StatusOK, result)
}
