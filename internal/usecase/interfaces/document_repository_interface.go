package interfaces

import (
	"context"

	"eolia_backend/internal/domain/entities"
)

// IDossierDocumentRepository abstracts DynamoDB persistence for document
// records. GetByID returns a zero-value document (empty DocumentID) when
// absent.

type IDossierDocumentRepository interface {
	Create(ctx context.Context, doc entities.DossierDocument) (entities.DossierDocument, error)
	GetByID(ctx context.Context, documentID string) (entities.DossierDocument, error)
	ListByDossierID(ctx context.Context, dossierID string) ([]entities.DossierDocument, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.DossierDocument, error)
	Delete(ctx context.Context, documentID string) error
}
