package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	request "ipay_billing/internal/adapter/http/dto/request"
	response "ipay_billing/internal/adapter/http/dto/response"
	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/infrastructure/ipay"
	"ipay_billing/internal/usecase"
	"ipay_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errInvalidRefundPayload   = pkg.NewDomainErrorSimple("INVALID_REFUND_INPUT", "Invalid refund payload", http.StatusBadRequest)
)

// PaymentHandler exposes the iPay operations over HTTP.
//
// Soft gateway errors are answered with iPay's own status and body. Hard
// gateway errors abort the request with the error_code iPay sent.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	cmd, ok := bindCheckout(c)
	if !ok {
		return
	}
	log.Printf("[payment][handler] checkout start shop_order_id=%s intent=%s", cmd.ShopOrderID, cmd.Intent)

	res, err := h.usecase.StartCheckout(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] checkout failed shop_order_id=%s err=%v", cmd.ShopOrderID, err)
		abortWithPaymentError(c, err)
		return
	}
	writeResult(c, http.StatusCreated, res)
}

func (h *PaymentHandler) Repeat(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	cmd, ok := bindCheckout(c)
	if !ok {
		return
	}
	log.Printf("[payment][handler] repeat start transaction_id=%s shop_order_id=%s", transactionID, cmd.ShopOrderID)

	res, err := h.usecase.Repeat(c.Request.Context(), transactionID, cmd)
	if err != nil {
		log.Printf("[payment][handler] repeat failed transaction_id=%s err=%v", transactionID, err)
		abortWithPaymentError(c, err)
		return
	}
	writeResult(c, http.StatusCreated, res)
}

// RedirectTo sends the payer to the approve link stored for a checkout
// record. Without one the payer goes back where they came from.
func (h *PaymentHandler) RedirectTo(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.usecase.GetRecord(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] redirect failed record_id=%s err=%v", id, err)
		abortWithPaymentError(c, err)
		return
	}

	if rec.RedirectURL != "" {
		log.Printf("[payment][handler] redirect record_id=%s order_id=%s", rec.ID, rec.OrderID)
		c.Redirect(http.StatusFound, rec.RedirectURL)
		return
	}

	back := strings.TrimSpace(c.GetHeader("Referer"))
	if back == "" {
		back = "/"
	}
	log.Printf("[payment][handler] redirect back record_id=%s status=%s", rec.ID, rec.Status)
	c.Redirect(http.StatusFound, back)
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRefundPayload.HTTPStatus, errInvalidRefundPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund start order_id=%s amount=%d", payload.OrderID, payload.Amount)

	res, err := h.usecase.Refund(c.Request.Context(), payload.OrderID, payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] refund failed order_id=%s err=%v", payload.OrderID, err)
		abortWithPaymentError(c, err)
		return
	}
	writeResult(c, http.StatusOK, res)
}

func (h *PaymentHandler) OrderDetails(c *gin.Context) {
	h.lookup(c, "order-details", h.usecase.OrderDetails)
}

func (h *PaymentHandler) OrderStatus(c *gin.Context) {
	h.lookup(c, "order-status", h.usecase.OrderStatus)
}

func (h *PaymentHandler) PaymentDetails(c *gin.Context) {
	h.lookup(c, "payment-details", h.usecase.PaymentDetails)
}

func (h *PaymentHandler) CompletePreAuth(c *gin.Context) {
	h.lookup(c, "complete-pre-auth", h.usecase.CompletePreAuth)
}

func (h *PaymentHandler) GetRecord(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.usecase.GetRecord(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get-record failed record_id=%s err=%v", id, err)
		abortWithPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func (h *PaymentHandler) ListRecords(c *gin.Context) {
	shopOrderID := c.Query("shop_order_id")
	recs, err := h.usecase.ListByShopOrderID(c.Request.Context(), shopOrderID)
	if err != nil {
		log.Printf("[payment][handler] list-records failed shop_order_id=%s err=%v", shopOrderID, err)
		abortWithPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(recs))
}

func (h *PaymentHandler) lookup(
	c *gin.Context,
	op string,
	call func(ctx context.Context, orderID string) (*entities.GatewayResponse, error),
) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] %s start order_id=%s", op, orderID)

	resp, err := call(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] %s failed order_id=%s err=%v", op, orderID, err)
		abortWithPaymentError(c, err)
		return
	}
	if resp.IsSoftError() {
		c.JSON(resp.StatusCode, resp.Body)
		return
	}
	c.JSON(http.StatusOK, resp.Body)
}

func bindCheckout(c *gin.Context) (usecase.CheckoutCommand, bool) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return usecase.CheckoutCommand{}, false
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return usecase.CheckoutCommand{}, false
	}
	return cmd, true
}

// writeResult answers soft errors with the gateway status so the caller sees
// the rejection the way iPay reported it.
func writeResult(c *gin.Context, okStatus int, res usecase.PaymentResult) {
	status := okStatus
	if res.Response.IsSoftError() {
		status = res.Response.StatusCode
	}
	c.JSON(status, response.FromPaymentResult(res))
}

func abortWithPaymentError(c *gin.Context, err error) {
	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) {
		appErr := pkg.NewDomainError("GATEWAY_ERROR", gwErr.Message, err, gwErr.HTTPStatus())
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	appErr := mapPaymentError(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShopOrderID), errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidIntent), errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_RECORD_NOT_FOUND", "Payment record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, ipay.ErrTransport), errors.Is(err, ipay.ErrMalformedResponse):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
