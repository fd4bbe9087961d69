package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CardPrice != 99 {
		t.Errorf("CardPrice = %d, want 99", cfg.CardPrice)
	}
	if cfg.ListenAddr != ":8080" || cfg.Env != "development" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.OutboundTimeout != 15*time.Second {
		t.Errorf("OutboundTimeout = %v", cfg.OutboundTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	t.Setenv("CARD_PRICE", "149")
	t.Setenv("OUTBOUND_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CardPrice != 149 {
		t.Errorf("CardPrice = %d, want 149", cfg.CardPrice)
	}
	if cfg.OutboundTimeout != 3*time.Second {
		t.Errorf("OutboundTimeout = %v", cfg.OutboundTimeout)
	}
}

func TestLoadMissingSecretErrors(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing secret")
	}
}
