package router

import (
	"github.com/labstack/echo/v4"

	"lendr/internal/adapter/api/handler"
	"lendr/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(middleware.PaymentRateLimit())
	payments.POST("/quote", paymentHandler.QuotePayment)
	payments.POST("/confirm", paymentHandler.ConfirmPayment)
}
