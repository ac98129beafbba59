package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider used at checkout.
//
// The backend forwards the client payload, keeps the provider response for
// traceability, and never touches card data itself.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
