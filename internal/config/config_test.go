package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"IPAY_URL", "IPAY_CLIENT_ID", "IPAY_SECRET_KEY", "IPAY_LANGUAGE", "IPAY_PAYMENT_CALLBACK_URL", "IPAY_REFUND_CALLBACK_URL", "APP_URL", "IPAY_DEBUG", "IPAY_TIMEOUT", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL)
	}
	if cfg.Locale != "ka" || cfg.Debug || cfg.Port != 8080 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.RequestTimeout)
	}
	if cfg.ClientID != "" || cfg.SecretKey != "" {
		t.Fatalf("credentials should stay empty: %+v", cfg)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("IPAY_URL", "https://ipay.ge/opay/api/v1/")
	t.Setenv("IPAY_CLIENT_ID", "id")
	t.Setenv("IPAY_SECRET_KEY", "secret")
	t.Setenv("IPAY_LANGUAGE", "en")
	t.Setenv("IPAY_DEBUG", "true")
	t.Setenv("IPAY_TIMEOUT", "5")
	t.Setenv("PORT", "9090")

	cfg := Load()
	if cfg.BaseURL != "https://ipay.ge/opay/api/v1" {
		t.Fatalf("trailing slash should be trimmed, got %q", cfg.BaseURL)
	}
	if cfg.ClientID != "id" || cfg.SecretKey != "secret" || cfg.Locale != "en" {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if !cfg.Debug || cfg.RequestTimeout != 5*time.Second || cfg.Port != 9090 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestConfig_ResolveURL(t *testing.T) {
	cases := []struct {
		name   string
		appURL string
		ref    string
		want   string
	}{
		{name: "relative", appURL: "https://shop.ge", ref: "/payments/callback", want: "https://shop.ge/payments/callback"},
		{name: "relative with base path", appURL: "https://shop.ge/app", ref: "/payments/callback", want: "https://shop.ge/app/payments/callback"},
		{name: "absolute untouched", appURL: "https://shop.ge", ref: "https://other.ge/cb", want: "https://other.ge/cb"},
		{name: "relative base keeps ref", appURL: "shop", ref: "/cb", want: "/cb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{AppURL: tc.appURL}
			if got := cfg.ResolveURL(tc.ref); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
