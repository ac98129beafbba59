package interfaces

import (
	"context"
	"errors"
	"time"

	"eolia_backend/internal/domain/entities"
)

// ErrConflict is returned by conditional writes when the stored record no
// longer matches the state the caller read. Callers decide whether to retry.
var ErrConflict = errors.New("conditional write conflict")

// IDossierRepository abstracts DynamoDB persistence for dossiers.
//
// Reads return a zero-value dossier (empty DossierID) when the record is
// absent. Status and metadata writes are conditional on the (status,
// updatedAt) pair the caller previously read; a mismatch yields ErrConflict
// and leaves the record untouched.

type IDossierRepository interface {
	CreateBatch(ctx context.Context, dossiers []entities.Dossier) error
	Get(ctx context.Context, orderID, dossierID string) (entities.Dossier, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Dossier, error)
	UpdateStatus(ctx context.Context, orderID, dossierID string, newStatus entities.DossierStatus, expectedStatus entities.DossierStatus, expectedUpdatedAt time.Time, now time.Time) (entities.Dossier, error)
	UpdateMetadata(ctx context.Context, orderID, dossierID string, metadata entities.DossierMetadata, expectedUpdatedAt time.Time, now time.Time) (entities.Dossier, error)
}
