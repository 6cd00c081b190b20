package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ipay_billing/internal/adapter/http/handlers"
	"ipay_billing/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setMiddlewares(r)
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(HeaderRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if got := w.Header().Get(HeaderRequestID); got == "" || got != w.Body.String() {
		t.Fatalf("expected generated request id, header=%q body=%q", got, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "req-1" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestAddPaymentRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	r := gin.New()
	addPaymentRoutes(r.Group("/v1"), handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)))

	want := map[string]bool{
		"POST /v1/checkout":                             false,
		"POST /v1/checkout/:transaction_id/repeat":      false,
		"GET /v1/checkout/redirect/:id":                 false,
		"POST /v1/refunds":                              false,
		"GET /v1/orders/:order_id":                      false,
		"GET /v1/orders/:order_id/status":               false,
		"GET /v1/payments/:order_id":                    false,
		"POST /v1/payments/:order_id/complete-pre-auth": false,
		"GET /v1/records":                               false,
		"GET /v1/records/:id":                           false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Fatalf("route not registered: %s", route)
		}
	}
}
