package request

import "encoding/json"

// CreatePaymentRequest asks for a provider payment; payload is forwarded to
// the provider as-is after the server stamps the authoritative amount.
type CreatePaymentRequest struct {
	Amount      float64         `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Payload     json.RawMessage `json:"payload"`
}
