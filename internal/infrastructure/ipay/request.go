package ipay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/pkg/metrics"
)

// Encoding selects how a POST body is serialized.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingForm
)

const (
	opToken           = "token"
	opCheckout        = "checkout"
	opRefund          = "refund"
	opOrderDetails    = "order_details"
	opOrderStatus     = "order_status"
	opPaymentDetails  = "payment_details"
	opCompletePreAuth = "complete_pre_auth"
	opPost            = "post"
	opGet             = "get"
)

// PostRequest sends body to rawURL. When authHeader is empty the token is
// resolved through RequestToken and sent as a Bearer token; otherwise
// authHeader is used verbatim and no token is requested.
func (c *Client) PostRequest(ctx context.Context, rawURL string, body any, token, authHeader string, enc Encoding) (*entities.GatewayResponse, error) {
	return c.post(ctx, opPost, rawURL, body, token, authHeader, enc)
}

// GetRequest always resolves the token before sending.
func (c *Client) GetRequest(ctx context.Context, rawURL, token string) (*entities.GatewayResponse, error) {
	return c.get(ctx, opGet, rawURL, token)
}

func (c *Client) post(ctx context.Context, op, rawURL string, body any, token, authHeader string, enc Encoding) (*entities.GatewayResponse, error) {
	if authHeader == "" {
		var err error
		if token, err = c.RequestToken(ctx, token); err != nil {
			return nil, err
		}
		authHeader = "Bearer " + token
	}

	payload, contentType, err := encodeBody(body, enc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", authHeader)

	c.debugf("[ipay][client] %s request url=%s body=%s", op, rawURL, payload)
	return c.send(op, req)
}

func (c *Client) get(ctx context.Context, op, rawURL, token string) (*entities.GatewayResponse, error) {
	token, err := c.RequestToken(ctx, token)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	c.debugf("[ipay][client] %s request url=%s", op, rawURL)
	return c.send(op, req)
}

func (c *Client) send(op string, req *http.Request) (*entities.GatewayResponse, error) {
	started := time.Now()
	c.logger.Printf("[ipay][client] %s start method=%s path=%s", op, req.Method, req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Observe(op, metrics.OutcomeTransport, time.Since(started))
		c.logger.Printf("[ipay][client] %s transport failed err=%v", op, err)
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.Observe(op, metrics.OutcomeTransport, time.Since(started))
		c.logger.Printf("[ipay][client] %s read body failed status=%d err=%v", op, resp.StatusCode, err)
		return nil, fmt.Errorf("%w: %s: read body: %w", ErrTransport, op, err)
	}
	c.debugf("[ipay][client] %s response status=%d body=%s", op, resp.StatusCode, raw)

	out, err := normalize(resp.StatusCode, raw)
	elapsed := time.Since(started)

	var gwErr *entities.GatewayError
	switch {
	case errors.As(err, &gwErr):
		c.metrics.Observe(op, metrics.OutcomeHardError, elapsed)
		c.logger.Printf("[ipay][client] %s hard error status=%d error_code=%d error_message=%q", op, resp.StatusCode, gwErr.Code, gwErr.Message)
		return nil, err
	case err != nil:
		c.metrics.Observe(op, metrics.OutcomeTransport, elapsed)
		c.logger.Printf("[ipay][client] %s malformed response status=%d err=%v", op, resp.StatusCode, err)
		return nil, err
	case out.IsSoftError():
		c.metrics.Observe(op, metrics.OutcomeSoftError, elapsed)
		c.logger.Printf("[ipay][client] %s soft error status=%d duration_ms=%d", op, resp.StatusCode, elapsed.Milliseconds())
	default:
		c.metrics.Observe(op, metrics.OutcomeSuccess, elapsed)
		c.logger.Printf("[ipay][client] %s success status=%d duration_ms=%d", op, resp.StatusCode, elapsed.Milliseconds())
	}
	return out, nil
}

// normalize maps a raw iPay answer onto the three outcomes: success (status
// below 400), soft error (error status without error_code) and hard error
// (error status with error_code, returned as *GatewayError).
func normalize(status int, raw []byte) (*entities.GatewayResponse, error) {
	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("%w: status=%d: %w", ErrMalformedResponse, status, err)
		}
		if body == nil {
			body = map[string]any{}
		}
	}

	out := &entities.GatewayResponse{
		Kind:       entities.ResponseSuccess,
		StatusCode: status,
		Body:       body,
		Raw:        json.RawMessage(raw),
	}
	if status < http.StatusBadRequest {
		return out, nil
	}

	if code, ok := errorCode(body, status); ok {
		message, _ := body["error_message"].(string)
		return nil, &entities.GatewayError{Code: code, Message: message}
	}

	out.Kind = entities.ResponseSoftError
	return out, nil
}

// errorCode accepts error_code as a JSON number or a numeric string. A value
// that cannot be read as a number still marks a hard error and falls back to
// the HTTP status.
func errorCode(body map[string]any, status int) (int, bool) {
	v, ok := body["error_code"]
	if !ok || v == nil {
		return 0, false
	}
	switch code := v.(type) {
	case float64:
		return int(code), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(code)); err == nil {
			return n, true
		}
	}
	return status, true
}

func encodeBody(body any, enc Encoding) ([]byte, string, error) {
	switch enc {
	case EncodingForm:
		switch v := body.(type) {
		case url.Values:
			return []byte(v.Encode()), "application/x-www-form-urlencoded", nil
		case map[string]string:
			form := url.Values{}
			for k, val := range v {
				form.Set(k, val)
			}
			return []byte(form.Encode()), "application/x-www-form-urlencoded", nil
		case nil:
			return nil, "application/x-www-form-urlencoded", nil
		}
		return nil, "", fmt.Errorf("%w: form encoding needs url.Values or map[string]string, got %T", ErrUnsupportedPayload, body)
	case EncodingJSON:
		b, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedPayload, err)
		}
		return b, "application/json", nil
	}
	return nil, "", fmt.Errorf("%w: unknown encoding %d", ErrUnsupportedPayload, enc)
}
