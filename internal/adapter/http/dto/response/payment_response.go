package response

import "encoding/json"

type PaymentIntentResponse struct {
	PaymentIntentID  string          `json:"paymentIntentId"`
	Status           string          `json:"status"`
	ProviderResponse json.RawMessage `json:"providerResponse,omitempty"`
}

func FromPaymentIntent(id, status string, providerResponse json.RawMessage) PaymentIntentResponse {
	return PaymentIntentResponse{
		PaymentIntentID:  id,
		Status:           status,
		ProviderResponse: providerResponse,
	}
}
