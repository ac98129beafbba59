package response

import (
	"time"

	"eolia_backend/internal/domain/entities"
)

type OrderResponse struct {
	OrderID         string               `json:"orderId"`
	UserID          string               `json:"userId"`
	Type            string               `json:"type"`
	Status          string               `json:"status"`
	TotalAmount     float64              `json:"totalAmount"`
	Items           []entities.OrderItem `json:"items"`
	PaymentIntentID string               `json:"paymentIntentId"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Type:            string(o.Type),
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		Items:           o.Items,
		PaymentIntentID: o.PaymentIntentID,
		CreatedAt:       o.CreatedAt,
	}
}
