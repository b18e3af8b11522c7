package testutils

import (
	"time"

	"github.com/SonnyAu/palate-website/config"
)

func GetTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: "0",
		},
		Log: config.LogConfig{
			Level:  "error",
			Format: "json",
			Output: "stdout",
		},
		Session: config.SessionConfig{
			Name:     "palate_session",
			Path:     "/",
			MaxAge:   30 * time.Minute,
			Secure:   false,
			HttpOnly: true,
			SameSite: "strict",
		},
		Mail: config.MailConfig{
			Host:        "smtp.example.com",
			Port:        587,
			Username:    "noreply@example.com",
			Password:    "password",
			Encryption:  "starttls",
			FromAddress: "noreply@example.com",
			FromName:    "PalAte Website",
			ToAddress:   "hello@example.com",
			SendTimeout: 5 * time.Second,
		},
		Templates: config.TemplatesConfig{
			Dir:       "templates",
			Extension: ".html",
		},
		Contact: config.ContactConfig{
			SubjectPrefix: "[Contact]",
			MinFillTime:   2 * time.Second,
			RateLimit:     5,
			RateWindow:    time.Hour,
		},
	}
}
