package interfaces

import (
	"context"

	"eolia_backend/internal/domain/entities"
)

// IDossierEventRepository is the append-only audit trail store. Events are
// never updated or deleted; ListByDossierID returns them in ascending
// timestamp order.

type IDossierEventRepository interface {
	Append(ctx context.Context, event entities.DossierEvent) (entities.DossierEvent, error)
	ListByDossierID(ctx context.Context, dossierID string) ([]entities.DossierEvent, error)
}
