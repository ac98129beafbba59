package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"
)

var (
	ErrInstallationDossierNotFound = errors.New("installation dossier not found for this order")
	ErrVTAlreadySubmitted          = errors.New("technical visit already submitted")
	ErrVTNotCompleted              = errors.New("technical visit must be completed before sending to the engineering office")
)

// VTValidationError carries the per-field failures of a technical-visit form.
type VTValidationError struct {
	Errors []entities.FieldError
}

func (e *VTValidationError) Error() string {
	return fmt.Sprintf("technical visit form has %d validation error(s)", len(e.Errors))
}

// MissingPhotosError lists photo ids referenced by a VT submission that are
// not attached to the installation dossier.
type MissingPhotosError struct {
	MissingIDs []string
}

func (e *MissingPhotosError) Error() string {
	return fmt.Sprintf("referenced photos not found: %s", strings.Join(e.MissingIDs, ", "))
}

// IInstallationUseCase holds the installation dossier's milestone operations.
//
// Both milestones are compositions of a metadata write and a guarded status
// transition, not separate state machines: the preconditions are plain
// status-and-attachment checks layered on the generic transition rules.

type IInstallationUseCase interface {
	SubmitTechnicalVisit(ctx context.Context, p entities.Principal, orderID string, form entities.VTFormData) (entities.Dossier, error)
	SendToEngineering(ctx context.Context, p entities.Principal, orderID string) (entities.Dossier, error)
}

type InstallationUseCase struct {
	dossiers  interfaces.IDossierRepository
	events    interfaces.IDossierEventRepository
	orders    interfaces.IOrderRepository
	documents interfaces.IDossierDocumentRepository
}

var _ IInstallationUseCase = (*InstallationUseCase)(nil)

func NewInstallationUseCase(dossiers interfaces.IDossierRepository, events interfaces.IDossierEventRepository, orders interfaces.IOrderRepository, documents interfaces.IDossierDocumentRepository) *InstallationUseCase {
	return &InstallationUseCase{dossiers: dossiers, events: events, orders: orders, documents: documents}
}

// SubmitTechnicalVisit validates the VT form, checks that every referenced
// photo is attached to the installation dossier, stores the form data and
// moves the dossier from vt_pending to vt_completed.
func (u *InstallationUseCase) SubmitTechnicalVisit(ctx context.Context, p entities.Principal, orderID string, form entities.VTFormData) (entities.Dossier, error) {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return entities.Dossier{}, &VTValidationError{Errors: fieldErrs}
	}

	d, err := u.installationDossier(ctx, p, orderID)
	if err != nil {
		return entities.Dossier{}, err
	}
	if d.Status != entities.InstallationVTPending {
		return entities.Dossier{}, ErrVTAlreadySubmitted
	}

	docs, err := u.documents.ListByDossierID(ctx, d.DossierID)
	if err != nil {
		return entities.Dossier{}, err
	}
	attached := make(map[string]bool, len(docs))
	for _, doc := range docs {
		attached[doc.DocumentID] = true
	}
	var missing []string
	for _, id := range form.PhotoIDs {
		if !attached[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return entities.Dossier{}, &MissingPhotosError{MissingIDs: missing}
	}

	now := time.Now().UTC()
	updated, err := u.advance(ctx, d, entities.InstallationVTCompleted, func(meta *entities.InstallationMetadata) {
		meta.VTData = &form
		meta.VTSubmittedAt = &now
	})
	if err != nil {
		return entities.Dossier{}, err
	}

	u.recordMilestone(ctx, p, updated, entities.EventVTSubmitted, map[string]interface{}{
		"photoCount": len(form.PhotoIDs),
	})
	log.Printf("[installation][usecase] vt submitted order_id=%s dossier_id=%s photos=%d", updated.OrderID, updated.DossierID, len(form.PhotoIDs))
	return updated, nil
}

// SendToEngineering hands the completed technical visit to the engineering
// office: stamps the hand-off time and moves vt_completed to awaiting_be.
func (u *InstallationUseCase) SendToEngineering(ctx context.Context, p entities.Principal, orderID string) (entities.Dossier, error) {
	d, err := u.installationDossier(ctx, p, orderID)
	if err != nil {
		return entities.Dossier{}, err
	}
	if d.Status != entities.InstallationVTCompleted {
		return entities.Dossier{}, ErrVTNotCompleted
	}

	now := time.Now().UTC()
	updated, err := u.advance(ctx, d, entities.InstallationAwaitingBE, func(meta *entities.InstallationMetadata) {
		meta.VTSentToBEAt = &now
	})
	if err != nil {
		return entities.Dossier{}, err
	}

	u.recordMilestone(ctx, p, updated, entities.EventVTSentToBE, map[string]interface{}{
		"sentAt": now.Format(time.RFC3339Nano),
	})
	log.Printf("[installation][usecase] vt sent to engineering order_id=%s dossier_id=%s", updated.OrderID, updated.DossierID)
	return updated, nil
}

func (u *InstallationUseCase) installationDossier(ctx context.Context, p entities.Principal, orderID string) (entities.Dossier, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Dossier{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Dossier{}, err
	}
	if order.OrderID == "" {
		return entities.Dossier{}, ErrOrderNotFound
	}
	if !p.CanAccessOrder(order.UserID) {
		return entities.Dossier{}, ErrForbidden
	}

	dossiers, err := u.dossiers.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Dossier{}, err
	}
	for _, d := range dossiers {
		if d.Type == entities.DossierTypeInstallation {
			return d, nil
		}
	}
	return entities.Dossier{}, ErrInstallationDossierNotFound
}

// advance writes the metadata mutation and then the status transition, each
// conditional on the previously read revision. The milestone endpoints are
// not retried on conflict: a concurrent change invalidates the precondition
// the caller saw, so the conflict is surfaced directly.
func (u *InstallationUseCase) advance(ctx context.Context, d entities.Dossier, next entities.DossierStatus, mutate func(*entities.InstallationMetadata)) (entities.Dossier, error) {
	if err := entities.ValidateTransition(d.Type, d.Status, next); err != nil {
		return entities.Dossier{}, err
	}

	meta, ok := d.Metadata.(*entities.InstallationMetadata)
	if !ok || meta == nil {
		meta = &entities.InstallationMetadata{}
	}
	merged := *meta
	mutate(&merged)

	now := time.Now().UTC()
	afterMeta, err := u.dossiers.UpdateMetadata(ctx, d.OrderID, d.DossierID, &merged, d.UpdatedAt, now)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Dossier{}, ErrStorageConflict
	}
	if err != nil {
		return entities.Dossier{}, err
	}

	updated, err := u.dossiers.UpdateStatus(ctx, d.OrderID, d.DossierID, next, d.Status, afterMeta.UpdatedAt, time.Now().UTC())
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Dossier{}, ErrStorageConflict
	}
	if err != nil {
		return entities.Dossier{}, err
	}
	return updated, nil
}

func (u *InstallationUseCase) recordMilestone(ctx context.Context, p entities.Principal, d entities.Dossier, et entities.EventType, data map[string]interface{}) {
	if _, err := u.events.Append(ctx, entities.NewDossierEvent(d.DossierID, et, p.EventSource(), data)); err != nil {
		log.Printf("[installation][usecase] event append failed dossier_id=%s event=%s err=%v", d.DossierID, et, err)
	}
}
