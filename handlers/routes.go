package handlers

import (
	"github.com/SonnyAu/palate-website/server"
)

func RegisterRoutes(srv *server.Server, pages *PageHandler, contact *ContactHandler) {
	srv.Get("/", pages.Home)
	srv.Get("/scoring", pages.Scoring)
	srv.Get("/privacy", pages.Privacy)
	srv.Get("/contact", pages.Contact)
	srv.Get("/health", pages.Health)

	srv.Post("/contact/token", contact.Token)
	srv.Post("/contact/submit", contact.Submit)

	srv.Static("/public", "public")
}
