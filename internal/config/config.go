package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env        string
	ListenAddr string

	LogLevel  string
	LogFormat string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	ResendAPIKey    string
	ResendFromEmail string

	SheetsWebhookURL string

	// The single allowed price point, in rupees. Order creation rejects any
	// other amount.
	CardPrice int64

	OutboundTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		Env:        getenv("APP_ENV", "development"),
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),

		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ResendFromEmail: getenv("RESEND_FROM_EMAIL", "Click2Card <onboarding@resend.dev>"),

		SheetsWebhookURL: os.Getenv("SHEETS_WEBHOOK_URL"),

		CardPrice: getenvInt64("CARD_PRICE", 99),

		OutboundTimeout: getenvDuration("OUTBOUND_TIMEOUT", 15*time.Second),
		ReadTimeout:     getenvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getenvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getenvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if cfg.RazorpayKeySecret == "" {
		return cfg, fmt.Errorf("RAZORPAY_KEY_SECRET not set")
	}
	return cfg, nil
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		var out int64
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
