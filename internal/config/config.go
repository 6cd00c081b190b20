package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL            = "https://dev.ipay.ge/opay/api/v1"
	DefaultLocale             = "ka"
	DefaultPaymentCallbackURL = "/payments/callback"
	DefaultRefundCallbackURL  = "/refunds/callback"
	DefaultAppURL             = "http://localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultPort               = 8080
)

// Config holds the iPay settings. It is loaded once at startup and passed by
// value to every component that needs it.
//
// Supported env vars:
//   - IPAY_URL (default: https://dev.ipay.ge/opay/api/v1)
//   - IPAY_CLIENT_ID, IPAY_SECRET_KEY (not validated; iPay rejects bad credentials)
//   - IPAY_LANGUAGE (default: ka)
//   - IPAY_PAYMENT_CALLBACK_URL (default: /payments/callback)
//   - IPAY_REFUND_CALLBACK_URL (default: /refunds/callback)
//   - APP_URL (default: http://localhost:8080) base for relative callback urls
//   - IPAY_DEBUG (default: false) logs request and response bodies
//   - IPAY_TIMEOUT (default: 30s)
//   - PORT (default: 8080)
type Config struct {
	BaseURL            string
	ClientID           string
	SecretKey          string
	Locale             string
	PaymentCallbackURL string
	RefundCallbackURL  string
	AppURL             string
	Debug              bool
	RequestTimeout     time.Duration
	Port               int
}

func Load() Config {
	return Config{
		BaseURL:            strings.TrimRight(getenvDefault("IPAY_URL", DefaultBaseURL), "/"),
		ClientID:           os.Getenv("IPAY_CLIENT_ID"),
		SecretKey:          os.Getenv("IPAY_SECRET_KEY"),
		Locale:             getenvDefault("IPAY_LANGUAGE", DefaultLocale),
		PaymentCallbackURL: getenvDefault("IPAY_PAYMENT_CALLBACK_URL", DefaultPaymentCallbackURL),
		RefundCallbackURL:  getenvDefault("IPAY_REFUND_CALLBACK_URL", DefaultRefundCallbackURL),
		AppURL:             getenvDefault("APP_URL", DefaultAppURL),
		Debug:              getenvBool("IPAY_DEBUG", false),
		RequestTimeout:     getenvDuration("IPAY_TIMEOUT", DefaultRequestTimeout),
		Port:               getenvInt("PORT", DefaultPort),
	}
}

// ResolveURL turns a callback reference into an absolute URL using AppURL as
// the base. Absolute references are returned unchanged.
func (c Config) ResolveURL(ref string) string {
	ref = strings.TrimSpace(ref)
	target, err := url.Parse(ref)
	if err != nil || target.IsAbs() {
		return ref
	}
	base, err := url.Parse(strings.TrimSpace(c.AppURL))
	if err != nil || !base.IsAbs() {
		return ref
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	target.Path = strings.TrimPrefix(target.Path, "/")
	return base.ResolveReference(target).String()
}

// PaymentRedirectURL is the absolute redirect_url sent with every checkout.
func (c Config) PaymentRedirectURL() string {
	return c.ResolveURL(c.PaymentCallbackURL)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
