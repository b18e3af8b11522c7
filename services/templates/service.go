package templates

import (
	"html/template"
	"io"
	"path/filepath"

	"github.com/SonnyAu/palate-website/config"
	"github.com/labstack/echo/v4"
)

type Service struct {
	config    *config.TemplatesConfig
	templates *template.Template
}

// Renderer adapts the service to echo's Renderer interface. It reads the
// parsed templates through the service so it can be installed before
// LoadTemplates has run.
type Renderer struct {
	svc *Service
}

func New(cfg *config.TemplatesConfig) *Service {
	return &Service{
		config: cfg,
	}
}

func (s *Service) LoadTemplates() error {
	pattern := filepath.Join(s.config.Dir, "*"+s.config.Extension)
	tmpl, err := template.ParseGlob(pattern)
	if err != nil {
		return err
	}

	s.templates = tmpl
	return nil
}

func (s *Service) Renderer() *Renderer {
	return &Renderer{svc: s}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if r.svc.config.Development {
		pattern := filepath.Join(r.svc.config.Dir, "*"+r.svc.config.Extension)
		tmpl, err := template.ParseGlob(pattern)
		if err != nil {
			return err
		}
		return tmpl.ExecuteTemplate(w, name, data)
	}

	return r.svc.templates.ExecuteTemplate(w, name, data)
}
