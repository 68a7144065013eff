package handler

import (
	"github.com/labstack/echo/v4"

	"lendr/internal/usecase"
	"lendr/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type quotePaymentRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
}

type confirmPaymentRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
	Method    string `json:"method" validate:"required,oneof=upi card"`
}

func (h *PaymentHandler) QuotePayment(c echo.Context) error {
	var req quotePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.paymentUseCase.QuotePayment(c.Request().Context(), req.ListingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	receipt, err := h.paymentUseCase.ConfirmPayment(c.Request().Context(), req.ListingID, req.Method)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, receipt)
}
