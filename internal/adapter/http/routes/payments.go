package routes

import (
	"ipay_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathRefunds  = "/refunds"
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathRecords  = "/records"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", h.Checkout)
		checkout.POST("/:transaction_id/repeat", h.Repeat)
		checkout.GET("/redirect/:id", h.RedirectTo)
	}

	rg.POST(PathRefunds, h.Refund)

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", h.OrderDetails)
		orders.GET("/:order_id/status", h.OrderStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:order_id", h.PaymentDetails)
		payments.POST("/:order_id/complete-pre-auth", h.CompletePreAuth)
	}

	records := rg.Group(PathRecords)
	{
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
	}
}
