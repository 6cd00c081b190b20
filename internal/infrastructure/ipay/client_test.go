package ipay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ipay_billing/internal/config"
	"ipay_billing/internal/domain/entities"
	"ipay_billing/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          string
}

// fakeIPay answers /oauth2/token with tokenBody and every other path from
// routes, falling back to 200 {}.
type fakeIPay struct {
	mu        sync.Mutex
	requests  []recordedRequest
	tokenBody string
	routes    map[string]fakeRoute
}

type fakeRoute struct {
	status int
	body   string
}

func (f *fakeIPay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:        r.Method,
		Path:          r.URL.EscapedPath(),
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          string(raw),
	})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/oauth2/token" {
		_, _ = io.WriteString(w, f.tokenBody)
		return
	}
	route, ok := f.routes[r.URL.EscapedPath()]
	if !ok {
		_, _ = io.WriteString(w, `{}`)
		return
	}
	w.WriteHeader(route.status)
	_, _ = io.WriteString(w, route.body)
}

func (f *fakeIPay) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newTestClient(t *testing.T, fake *fakeIPay, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		BaseURL:            srv.URL,
		ClientID:           "client",
		SecretKey:          "secret",
		Locale:             "ka",
		PaymentCallbackURL: "/payments/callback",
		AppURL:             "https://shop.ge",
		Debug:              true,
		RequestTimeout:     5 * time.Second,
	}
	opts = append([]Option{WithLogger(log.New(io.Discard, "", 0))}, opts...)
	return NewClient(cfg, opts...)
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_RequestToken_ExplicitSkipsNetwork(t *testing.T) {
	c := NewClient(config.Config{BaseURL: "http://ipay.invalid"},
		WithLogger(log.New(io.Discard, "", 0)),
		WithHTTPClient(doerFunc(func(*http.Request) (*http.Response, error) {
			t.Fatalf("no request expected")
			return nil, nil
		})),
	)

	token, err := c.RequestToken(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestClient_RequestToken_Fetches(t *testing.T) {
	fake := &fakeIPay{tokenBody: `{"access_token":"xyz","token_type":"Bearer","expires_in":3600}`}
	c := newTestClient(t, fake)

	token, err := c.RequestToken(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/oauth2/token", reqs[0].Path)
	assert.Equal(t, "grant_type=client_credentials", reqs[0].Body)
	assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].ContentType)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("client:secret")), reqs[0].Authorization)
}

func TestClient_RequestToken_FallbackReturnsInput(t *testing.T) {
	fake := &fakeIPay{tokenBody: `{}`}
	c := newTestClient(t, fake)

	token, err := c.RequestToken(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestClient_RequestToken_HardErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error_code":401,"error_message":"invalid client"}`)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(config.Config{BaseURL: srv.URL}, WithLogger(log.New(io.Discard, "", 0)))

	_, err := c.RequestToken(context.Background(), "")
	var gwErr *entities.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 401, gwErr.Code)
	assert.Equal(t, "invalid client", gwErr.Message)
}

func TestClient_Checkout(t *testing.T) {
	fake := &fakeIPay{
		tokenBody: `{"access_token":"xyz"}`,
		routes: map[string]fakeRoute{
			"/checkout/orders": {status: http.StatusOK, body: `{"status":"CREATED","order_id":"ord-1","links":[{"rel":"self","href":"https://ipay/self"},{"rel":"approve","href":"https://ipay/pay"}]}`},
		},
	}
	c := newTestClient(t, fake)

	resp, err := c.Checkout(context.Background(), entities.CheckoutParams{
		Intent:        entities.IntentCapture,
		ShopOrderID:   "42",
		PurchaseUnits: []entities.PurchaseUnit{entities.BuildPurchaseUnit(1050, "", "")},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ResponseSuccess, resp.Kind)
	assert.Equal(t, "ord-1", resp.String("order_id"))

	href, ok := RedirectURL(resp, "")
	require.True(t, ok)
	assert.Equal(t, "https://ipay/pay", href)

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/oauth2/token", reqs[0].Path)
	assert.Equal(t, "/checkout/orders", reqs[1].Path)
	assert.Equal(t, "Bearer xyz", reqs[1].Authorization)
	assert.Equal(t, "application/json", reqs[1].ContentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(reqs[1].Body), &body))
	assert.Equal(t, "CAPTURE", body["intent"])
	assert.Equal(t, "AUTOMATIC", body["capture_method"])
	assert.Equal(t, "42", body["shop_order_id"])
	assert.Equal(t, "ka", body["locale"])
	assert.Equal(t, true, body["show_shop_order_id_on_extract"])
	assert.Equal(t, "https://shop.ge/payments/callback", body["redirect_url"])
	assert.Equal(t, []any{}, body["items"])

	units := body["purchase_units"].([]any)
	require.Len(t, units, 1)
	amount := units[0].(map[string]any)["amount"].(map[string]any)
	assert.Equal(t, 10.5, amount["value"])
	assert.Equal(t, "GEL", amount["currency_code"])
}

func TestClient_Checkout_ExplicitTokenAndManualCapture(t *testing.T) {
	fake := &fakeIPay{tokenBody: `{"access_token":"unused"}`}
	c := newTestClient(t, fake)

	_, err := c.Checkout(context.Background(), entities.CheckoutParams{
		Intent:        entities.IntentAuthorize,
		ShopOrderID:   "7",
		Token:         "given",
		CaptureMethod: entities.CaptureMethodManual,
	})
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer given", reqs[0].Authorization)
	assert.Contains(t, reqs[0].Body, `"capture_method":"MANUAL"`)
}

func TestClient_Repeat(t *testing.T) {
	fake := &fakeIPay{}
	c := newTestClient(t, fake)

	_, err := c.Repeat(context.Background(), "trx-9", entities.CheckoutParams{Intent: entities.IntentCapture, ShopOrderID: "1", Token: "t"})
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/checkout/orders", reqs[0].Path)
	assert.Contains(t, reqs[0].Body, `"card_transaction_id":"trx-9"`)
}

func TestClient_Refund(t *testing.T) {
	fake := &fakeIPay{}
	c := newTestClient(t, fake)

	_, err := c.Refund(context.Background(), "ord-1", 1050, "t")
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/checkout/refund", reqs[0].Path)
	assert.JSONEq(t, `{"order_id":"ord-1","amount":10.5}`, reqs[0].Body)
}

func TestClient_GetOperations(t *testing.T) {
	cases := []struct {
		name string
		call func(c *Client) (*entities.GatewayResponse, error)
		path string
	}{
		{name: "order details", call: func(c *Client) (*entities.GatewayResponse, error) {
			return c.OrderDetails(context.Background(), "ord 1", "t")
		}, path: "/checkout/orders/ord%201"},
		{name: "order status", call: func(c *Client) (*entities.GatewayResponse, error) {
			return c.OrderStatus(context.Background(), "ord-1", "t")
		}, path: "/checkout/orders/status/ord-1"},
		{name: "payment details", call: func(c *Client) (*entities.GatewayResponse, error) {
			return c.PaymentDetails(context.Background(), "ord-1", "t")
		}, path: "/checkout/payment/ord-1"},
		{name: "complete pre-auth", call: func(c *Client) (*entities.GatewayResponse, error) {
			return c.CompletePreAuth(context.Background(), "ord-1", "t")
		}, path: "/checkout/payment/pre-auth/complete/ord-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeIPay{}
			c := newTestClient(t, fake)

			resp, err := tc.call(c)
			require.NoError(t, err)
			assert.Equal(t, entities.ResponseSuccess, resp.Kind)

			reqs := fake.recorded()
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodGet, reqs[0].Method)
			assert.Equal(t, tc.path, reqs[0].Path)
			assert.Equal(t, "Bearer t", reqs[0].Authorization)
		})
	}
}

func TestClient_GetRequest_AlwaysResolvesToken(t *testing.T) {
	fake := &fakeIPay{tokenBody: `{"access_token":"fresh"}`}
	c := newTestClient(t, fake)

	_, err := c.OrderStatus(context.Background(), "ord-1", "")
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/oauth2/token", reqs[0].Path)
	assert.Equal(t, "Bearer fresh", reqs[1].Authorization)
}

func TestClient_HardError(t *testing.T) {
	fake := &fakeIPay{routes: map[string]fakeRoute{
		"/checkout/orders": {status: http.StatusNotFound, body: `{"error_code":404,"error_message":"not found"}`},
	}}
	c := newTestClient(t, fake)

	resp, err := c.Checkout(context.Background(), entities.CheckoutParams{Intent: entities.IntentCapture, ShopOrderID: "1", Token: "t"})
	require.Nil(t, resp)

	var gwErr *entities.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, 404, gwErr.Code)
	assert.Equal(t, "not found", gwErr.Message)
}

func TestClient_HardError_StringCodeAndMissingMessage(t *testing.T) {
	fake := &fakeIPay{routes: map[string]fakeRoute{
		"/checkout/refund": {status: http.StatusForbidden, body: `{"error_code":"403"}`},
	}}
	c := newTestClient(t, fake)

	_, err := c.Refund(context.Background(), "ord-1", 100, "t")
	var gwErr *entities.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 403, gwErr.Code)
	assert.Equal(t, "", gwErr.Message)
}

func TestClient_SoftError(t *testing.T) {
	fake := &fakeIPay{routes: map[string]fakeRoute{
		"/checkout/orders": {status: http.StatusUnprocessableEntity, body: `{"errors":{"shop_order_id":["required"]}}`},
	}}
	c := newTestClient(t, fake)

	resp, err := c.Checkout(context.Background(), entities.CheckoutParams{Intent: entities.IntentCapture, Token: "t"})
	require.NoError(t, err)
	assert.True(t, resp.IsSoftError())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, resp.Body, "errors")
}

func TestClient_SuccessBodyWithErrorCodeIsNotRaised(t *testing.T) {
	fake := &fakeIPay{routes: map[string]fakeRoute{
		"/checkout/orders/status/ord-1": {status: http.StatusOK, body: `{"error_code":0,"status":"success"}`},
	}}
	c := newTestClient(t, fake)

	resp, err := c.OrderStatus(context.Background(), "ord-1", "t")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.String("status"))
}

func TestClient_MalformedResponse(t *testing.T) {
	fake := &fakeIPay{routes: map[string]fakeRoute{
		"/checkout/payment/ord-1": {status: http.StatusBadGateway, body: `<html>bad gateway</html>`},
	}}
	c := newTestClient(t, fake)

	_, err := c.PaymentDetails(context.Background(), "ord-1", "t")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_EmptyBody(t *testing.T) {
	fake := &fakeIPay{routes: map[string]fakeRoute{
		"/checkout/payment/pre-auth/complete/ord-1": {status: http.StatusNoContent},
	}}
	c := newTestClient(t, fake)

	resp, err := c.CompletePreAuth(context.Background(), "ord-1", "t")
	require.NoError(t, err)
	assert.Empty(t, resp.Body)
}

func TestClient_TransportFailure(t *testing.T) {
	c := NewClient(config.Config{BaseURL: "http://ipay.invalid"},
		WithLogger(log.New(io.Discard, "", 0)),
		WithHTTPClient(doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})),
	)

	_, err := c.OrderDetails(context.Background(), "ord-1", "t")
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_PostRequest_ExplicitHeaderSkipsToken(t *testing.T) {
	fake := &fakeIPay{tokenBody: `{"access_token":"unused"}`}
	c := newTestClient(t, fake)

	_, err := c.PostRequest(context.Background(), c.endpoint("/custom"), map[string]string{"a": "b"}, "", "Custom value", EncodingForm)
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/custom", reqs[0].Path)
	assert.Equal(t, "Custom value", reqs[0].Authorization)
	assert.Equal(t, "a=b", reqs[0].Body)
}

func TestClient_PostRequest_UnsupportedFormBody(t *testing.T) {
	fake := &fakeIPay{}
	c := newTestClient(t, fake)

	_, err := c.PostRequest(context.Background(), c.endpoint("/custom"), 42, "t", "", EncodingForm)
	require.ErrorIs(t, err, ErrUnsupportedPayload)
	assert.Empty(t, fake.recorded())
}

func TestClient_Metrics(t *testing.T) {
	fake := &fakeIPay{
		tokenBody: `{"access_token":"xyz"}`,
		routes: map[string]fakeRoute{
			"/checkout/orders/ord-1": {status: http.StatusBadRequest, body: `{"error_code":400,"error_message":"bad"}`},
		},
	}
	m := metrics.NewGatewayMetrics(prometheus.NewRegistry())
	c := newTestClient(t, fake, WithMetrics(m))

	_, err := c.OrderDetails(context.Background(), "ord-1", "")
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(opToken, metrics.OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(opOrderDetails, metrics.OutcomeHardError)))
}

func TestNormalize(t *testing.T) {
	resp, err := normalize(http.StatusOK, []byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Body)

	_, err = normalize(http.StatusOK, []byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = normalize(http.StatusBadRequest, []byte(`{"error_code":"oops"}`))
	var gwErr *entities.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadRequest, gwErr.Code)

	resp, err = normalize(http.StatusBadRequest, []byte(`{"error_code":null,"message":"x"}`))
	require.NoError(t, err)
	assert.True(t, resp.IsSoftError())
	assert.True(t, strings.Contains(string(resp.Raw), "message"))
}
