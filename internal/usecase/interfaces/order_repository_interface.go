package interfaces

import (
	"context"

	"eolia_backend/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for orders. The dossier
// service only ever needs the owning user and the line items; order CRUD
// beyond create/get lives elsewhere.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
}
