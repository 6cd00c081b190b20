package ipay

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"ipay_billing/internal/config"
	"ipay_billing/pkg/metrics"
)

var (
	ErrTransport          = errors.New("ipay transport failure")
	ErrMalformedResponse  = errors.New("ipay returned a malformed response")
	ErrUnsupportedPayload = errors.New("unsupported request payload")
)

// Doer is the transport used by Client. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the iPay REST API. It holds no per-call state: tokens are
// fetched for every call that does not receive one.
type Client struct {
	cfg     config.Config
	http    Doer
	logger  *log.Logger
	metrics *metrics.GatewayMetrics
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithMetrics(m *metrics.GatewayMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(cfg config.Config, opts ...Option) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Printf("[ipay][client] initialized base_url=%s locale=%s debug=%t", cfg.BaseURL, cfg.Locale, cfg.Debug)
	return c
}

func (c *Client) Config() config.Config {
	return c.cfg
}

// endpoint joins a fixed path with an optional id, escaping the id.
func (c *Client) endpoint(path string, id ...string) string {
	u := c.cfg.BaseURL + path
	for _, part := range id {
		u += "/" + url.PathEscape(part)
	}
	return u
}

func (c *Client) debugf(format string, args ...any) {
	if c.cfg.Debug {
		c.logger.Printf(format, args...)
	}
}
