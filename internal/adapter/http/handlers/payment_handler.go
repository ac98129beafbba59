package handlers

import (
	"errors"
	"log"
	"net/http"

	request "eolia_backend/internal/adapter/http/dto/request"
	response "eolia_backend/internal/adapter/http/dto/response"
	"eolia_backend/internal/usecase"
	"eolia_backend/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler creates provider payment intents for checkout.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentIntent forwards the payment to the provider and returns the
// intent id the subsequent order creation must reference.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	intent, err := h.usecase.CreateIntent(c.Request.Context(), req.Amount, req.Description, req.Payload)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_intent_id=%s status=%s", intent.PaymentIntentID, intent.Status)

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent.PaymentIntentID, intent.Status, intent.ProviderResponse))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
