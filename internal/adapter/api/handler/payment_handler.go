package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
	"familymarket/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type featureRequest struct {
	ListingID string  `json:"listingId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,min=100"`
}

// CreateFeaturePreference starts checkout for featuring one listing and
// returns the redirect URL.
func (h *PaymentHandler) CreateFeaturePreference(c echo.Context) error {
	var req featureRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, initPoint, err := h.paymentUseCase.CreateFeaturePreference(c.Request().Context(), uid(c), req.ListingID, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"payment":   payment,
		"initPoint": initPoint,
	})
}

type webhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook receives gateway payment notifications. Non-payment events and
// processing failures are acknowledged with 200 so the gateway stops
// retrying; the next notification for the same payment is idempotent.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return response.Success(c, map[string]string{"status": "ignored"})
	}

	paymentID := req.Data.ID
	if paymentID == "" {
		paymentID = c.QueryParam("data.id")
	}
	eventType := req.Type
	if eventType == "" {
		eventType = c.QueryParam("type")
	}

	if eventType != "payment" || paymentID == "" {
		return response.Success(c, map[string]string{"status": "ignored"})
	}

	if err := h.paymentUseCase.HandleWebhook(c.Request().Context(), paymentID); err != nil {
		logger.Error("Webhook processing failed for payment %s: %v", paymentID, err)
	}

	return response.Success(c, map[string]string{"status": "ok"})
}

func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.paymentUseCase.GetMine(c.Request().Context(), uid(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, payment)
}
