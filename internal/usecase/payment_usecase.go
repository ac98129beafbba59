package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"eolia_backend/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrInvalidPaymentAmount       = errors.New("amount must be greater than zero")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// PaymentIntent is what checkout needs back from the provider: an id the
// order will reference and the provider's verdict.
type PaymentIntent struct {
	PaymentIntentID  string
	Status           string
	ProviderResponse json.RawMessage
}

// IPaymentUseCase creates the provider payment that checkout references as
// paymentIntentId. No payment record is kept here; the provider response is
// returned for the caller to act on.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, amount float64, description string, payload json.RawMessage) (PaymentIntent, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway}
}

func (u *PaymentUseCase) CreateIntent(ctx context.Context, amount float64, description string, payload json.RawMessage) (PaymentIntent, error) {
	mockMode := isPaymentGatewayMockEnabled()
	if amount <= 0 {
		return PaymentIntent{}, ErrInvalidPaymentAmount
	}
	if len(payload) == 0 {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			return PaymentIntent{}, ErrInvalidPaymentPayload
		}
	}
	if !json.Valid(payload) {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			return PaymentIntent{}, ErrInvalidPaymentPayload
		}
	}
	if u.gateway == nil {
		return PaymentIntent{}, errors.New("payment gateway not configured")
	}

	// The amount authoritative here is the one the server computed, never
	// the one embedded in the client payload.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		reqMap["transaction_amount"] = amount
		if _, ok := reqMap["description"]; !ok && strings.TrimSpace(description) != "" {
			reqMap["description"] = description
		}
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway")
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		resp, err := json.Marshal(map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"transaction_amount": amount,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return PaymentIntent{}, err
		}
		return PaymentIntent{PaymentIntentID: id, Status: "approved", ProviderResponse: resp}, nil
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed err=%v", err)
		if isGatewayUnauthorized(err) {
			return PaymentIntent{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return PaymentIntent{}, ErrPaymentGatewayBadRequest
		}
		return PaymentIntent{}, err
	}
	log.Printf("[payment][usecase] payment gateway success provider_payment_id=%s provider_status=%s", providerPaymentID, providerStatus)

	return PaymentIntent{
		PaymentIntentID:  providerPaymentID,
		Status:           providerStatus,
		ProviderResponse: providerResp,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
