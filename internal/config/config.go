package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = "8000"
	DefaultServiceName = "Wish Weaver Backend"
	DefaultGraphAPIURL = "https://graph.facebook.com/v18.0"
	DefaultCountryCode = "91"
	DefaultHTTPTimeout = 30 * time.Second
)

// Origens do front (dev + vercel)
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:8080",
	"https://birth-wish-automation-git-master-nilesh-pawars-projects.vercel.app",
	"https://birth-wish-automation.vercel.app",
}

// Config é montada uma vez no startup e só lida depois disso.
type Config struct {
	Port        string
	ServiceName string

	WhatsAppPhoneNumberID string
	WhatsAppAccessToken   string
	GraphAPIURL           string
	DefaultCountryCode    string
	HTTPClientTimeout     time.Duration

	AllowedOrigins []string
}

// Load lê o .env (se existir) e depois as variáveis de ambiente
func Load(envFiles ...string) (*Config, error) {
	// .env é opcional, em produção vem tudo do ambiente
	_ = godotenv.Load(envFiles...)

	return FromLookup(os.LookupEnv)
}

// FromLookup permite injetar o ambiente nos testes
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := &Config{
		Port:                  get("PORT", DefaultPort),
		ServiceName:           get("SERVICE_NAME", DefaultServiceName),
		WhatsAppPhoneNumberID: get("WHATSAPP_PHONE_NUMBER_ID", ""),
		WhatsAppAccessToken:   get("WHATSAPP_ACCESS_TOKEN", ""),
		GraphAPIURL:           strings.TrimRight(get("WHATSAPP_API_URL", DefaultGraphAPIURL), "/"),
		DefaultCountryCode:    get("DEFAULT_COUNTRY_CODE", DefaultCountryCode),
		HTTPClientTimeout:     DefaultHTTPTimeout,
		AllowedOrigins:        DefaultAllowedOrigins,
	}

	if raw := get("HTTP_CLIENT_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("HTTP_CLIENT_TIMEOUT inválido %q: %w", raw, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("HTTP_CLIENT_TIMEOUT não pode ser negativo: %s", raw)
		}
		cfg.HTTPClientTimeout = timeout
	}

	if raw := get("ALLOWED_ORIGINS", ""); raw != "" {
		cfg.AllowedOrigins = splitList(raw)
	}

	return cfg, nil
}

func (c *Config) HasDefaultCredentials() bool {
	return c.WhatsAppPhoneNumberID != "" && c.WhatsAppAccessToken != ""
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
