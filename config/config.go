package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `envPrefix:"PALATE_SERVER_"`
	Log       LogConfig       `envPrefix:"PALATE_LOG_"`
	Session   SessionConfig   `envPrefix:"PALATE_SESSION_"`
	Mail      MailConfig      `envPrefix:"PALATE_MAIL_"`
	Templates TemplatesConfig `envPrefix:"PALATE_TEMPLATES_"`
	Contact   ContactConfig   `envPrefix:"PALATE_CONTACT_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"localhost"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
	Output string `env:"OUTPUT" envDefault:"stdout"`
}

type SessionConfig struct {
	Name     string        `env:"NAME" envDefault:"palate_session"`
	Path     string        `env:"PATH" envDefault:"/"`
	Domain   string        `env:"DOMAIN" envDefault:""`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"30m"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	HttpOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	SameSite string        `env:"SAME_SITE" envDefault:"strict"`
}

type MailConfig struct {
	Host        string        `env:"HOST"`
	Port        int           `env:"PORT" envDefault:"587"`
	Username    string        `env:"USERNAME" envDefault:""`
	Password    string        `env:"PASSWORD" envDefault:""`
	Encryption  string        `env:"ENCRYPTION" envDefault:"starttls"`
	FromAddress string        `env:"FROM_ADDRESS"`
	FromName    string        `env:"FROM_NAME" envDefault:"PalAte Website"`
	ToAddress   string        `env:"TO_ADDRESS"`
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"10s"`
}

type TemplatesConfig struct {
	Dir         string `env:"DIR" envDefault:"templates"`
	Extension   string `env:"EXTENSION" envDefault:".html"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

type ContactConfig struct {
	SubjectPrefix string        `env:"SUBJECT_PREFIX" envDefault:"[Contact]"`
	MinFillTime   time.Duration `env:"MIN_FILL_TIME" envDefault:"2s"`
	RateLimit     int           `env:"RATE_LIMIT" envDefault:"5"`
	RateWindow    time.Duration `env:"RATE_WINDOW" envDefault:"1h"`
}

func LoadConfig(cfg *Config) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return cfg.Validate()
}

// Validate fails fast on settings the contact pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Mail.Host == "" {
		return fmt.Errorf("PALATE_MAIL_HOST is required")
	}
	if c.Mail.FromAddress == "" {
		return fmt.Errorf("PALATE_MAIL_FROM_ADDRESS is required")
	}
	if c.Mail.ToAddress == "" {
		return fmt.Errorf("PALATE_MAIL_TO_ADDRESS is required")
	}
	return nil
}
