package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrDossierNotFound  = errors.New("dossier not found")
	ErrForbidden        = errors.New("caller may not access this order")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidDossierID = errors.New("invalid dossier id")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrStorageConflict  = errors.New("dossier was modified concurrently, retry the request")
)

// IDossierUseCase is the dossier lifecycle service exposed to HTTP handlers.
//
// Every operation authorizes the principal against the order's owner (admins
// may act on any order). UpdateStatus is the only path by which a dossier's
// status changes.

type IDossierUseCase interface {
	ListDossiers(ctx context.Context, p entities.Principal, orderID string) ([]entities.Dossier, error)
	GetDossier(ctx context.Context, p entities.Principal, orderID, dossierID string) (entities.Dossier, []entities.DossierEvent, error)
	GetEvents(ctx context.Context, p entities.Principal, orderID, dossierID string) ([]entities.DossierEvent, error)
	UpdateStatus(ctx context.Context, p entities.Principal, orderID, dossierID string, newStatus entities.DossierStatus) (entities.Dossier, error)
	UpdateMetadata(ctx context.Context, p entities.Principal, orderID, dossierID string, patch json.RawMessage) (entities.Dossier, error)
}

type DossierUseCase struct {
	dossiers interfaces.IDossierRepository
	events   interfaces.IDossierEventRepository
	orders   interfaces.IOrderRepository
}

var _ IDossierUseCase = (*DossierUseCase)(nil)

func NewDossierUseCase(dossiers interfaces.IDossierRepository, events interfaces.IDossierEventRepository, orders interfaces.IOrderRepository) *DossierUseCase {
	return &DossierUseCase{dossiers: dossiers, events: events, orders: orders}
}

// authorizeOrder loads the order and checks that the principal owns it or is
// an admin.
func (u *DossierUseCase) authorizeOrder(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.OrderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !p.CanAccessOrder(order.UserID) {
		return entities.Order{}, ErrForbidden
	}
	return order, nil
}

func (u *DossierUseCase) ListDossiers(ctx context.Context, p entities.Principal, orderID string) ([]entities.Dossier, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if _, err := u.authorizeOrder(ctx, p, orderID); err != nil {
		return nil, err
	}
	return u.dossiers.ListByOrderID(ctx, orderID)
}

func (u *DossierUseCase) GetDossier(ctx context.Context, p entities.Principal, orderID, dossierID string) (entities.Dossier, []entities.DossierEvent, error) {
	d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return entities.Dossier{}, nil, err
	}
	events, err := u.events.ListByDossierID(ctx, d.DossierID)
	if err != nil {
		return entities.Dossier{}, nil, err
	}
	return d, events, nil
}

func (u *DossierUseCase) GetEvents(ctx context.Context, p entities.Principal, orderID, dossierID string) ([]entities.DossierEvent, error) {
	d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return nil, err
	}
	return u.events.ListByDossierID(ctx, d.DossierID)
}

func (u *DossierUseCase) loadDossier(ctx context.Context, p entities.Principal, orderID, dossierID string) (entities.Dossier, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Dossier{}, ErrInvalidOrderID
	}
	dossierID = strings.TrimSpace(dossierID)
	if dossierID == "" {
		return entities.Dossier{}, ErrInvalidDossierID
	}
	if _, err := u.authorizeOrder(ctx, p, orderID); err != nil {
		return entities.Dossier{}, err
	}

	d, err := u.dossiers.Get(ctx, orderID, dossierID)
	if err != nil {
		return entities.Dossier{}, err
	}
	if d.DossierID == "" {
		return entities.Dossier{}, ErrDossierNotFound
	}
	return d, nil
}

// UpdateStatus validates the requested transition against the rule table and
// applies it with a conditional write keyed on the previously read (status,
// updatedAt). On a conflict it re-reads once, revalidates and retries; a
// second conflict surfaces ErrStorageConflict. Exactly one status_changed
// event is appended per successful change.
func (u *DossierUseCase) UpdateStatus(ctx context.Context, p entities.Principal, orderID, dossierID string, newStatus entities.DossierStatus) (entities.Dossier, error) {
	if strings.TrimSpace(string(newStatus)) == "" {
		return entities.Dossier{}, ErrInvalidStatus
	}

	d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return entities.Dossier{}, err
	}

	updated, err := u.applyStatus(ctx, d, newStatus)
	if errors.Is(err, interfaces.ErrConflict) {
		log.Printf("[dossier][usecase] update-status conflict, retrying order_id=%s dossier_id=%s", d.OrderID, d.DossierID)
		fresh, err := u.dossiers.Get(ctx, d.OrderID, d.DossierID)
		if err != nil {
			return entities.Dossier{}, err
		}
		if fresh.DossierID == "" {
			return entities.Dossier{}, ErrDossierNotFound
		}
		updated, err = u.applyStatus(ctx, fresh, newStatus)
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Dossier{}, ErrStorageConflict
		}
		if err != nil {
			return entities.Dossier{}, err
		}
		u.recordStatusChange(ctx, p, fresh.Status, updated)
		return updated, nil
	}
	if err != nil {
		return entities.Dossier{}, err
	}

	u.recordStatusChange(ctx, p, d.Status, updated)
	return updated, nil
}

func (u *DossierUseCase) applyStatus(ctx context.Context, d entities.Dossier, newStatus entities.DossierStatus) (entities.Dossier, error) {
	if err := entities.ValidateTransition(d.Type, d.Status, newStatus); err != nil {
		return entities.Dossier{}, err
	}
	now := time.Now().UTC()
	return u.dossiers.UpdateStatus(ctx, d.OrderID, d.DossierID, newStatus, d.Status, d.UpdatedAt, now)
}

// recordStatusChange appends the audit event after the status write. The
// status write is authoritative: if the append fails, the gap is logged for
// operators, never rolled back.
func (u *DossierUseCase) recordStatusChange(ctx context.Context, p entities.Principal, oldStatus entities.DossierStatus, d entities.Dossier) {
	event := entities.NewDossierEvent(d.DossierID, entities.EventStatusChanged, p.EventSource(), map[string]interface{}{
		"oldStatus": string(oldStatus),
		"newStatus": string(d.Status),
	})
	if _, err := u.events.Append(ctx, event); err != nil {
		log.Printf("[dossier][usecase] event append failed after status write order_id=%s dossier_id=%s old=%s new=%s err=%v",
			d.OrderID, d.DossierID, oldStatus, d.Status, err)
	}
}

// UpdateMetadata merges a type-shaped partial payload into the dossier's
// metadata. Unknown fields are rejected before anything is written; status is
// never touched.
func (u *DossierUseCase) UpdateMetadata(ctx context.Context, p entities.Principal, orderID, dossierID string, patch json.RawMessage) (entities.Dossier, error) {
	d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return entities.Dossier{}, err
	}

	mp, err := entities.DecodeMetadataPatch(d.Type, patch)
	if err != nil {
		return entities.Dossier{}, err
	}

	updated, err := u.applyMetadata(ctx, d, mp)
	if errors.Is(err, interfaces.ErrConflict) {
		log.Printf("[dossier][usecase] update-metadata conflict, retrying order_id=%s dossier_id=%s", d.OrderID, d.DossierID)
		fresh, err := u.dossiers.Get(ctx, d.OrderID, d.DossierID)
		if err != nil {
			return entities.Dossier{}, err
		}
		if fresh.DossierID == "" {
			return entities.Dossier{}, ErrDossierNotFound
		}
		updated, err = u.applyMetadata(ctx, fresh, mp)
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Dossier{}, ErrStorageConflict
		}
		if err != nil {
			return entities.Dossier{}, err
		}
		u.recordMetadataUpdate(ctx, p, mp, updated)
		return updated, nil
	}
	if err != nil {
		return entities.Dossier{}, err
	}

	u.recordMetadataUpdate(ctx, p, mp, updated)
	return updated, nil
}

func (u *DossierUseCase) applyMetadata(ctx context.Context, d entities.Dossier, mp entities.MetadataPatch) (entities.Dossier, error) {
	merged, err := mp.Apply(d.Metadata)
	if err != nil {
		return entities.Dossier{}, err
	}
	now := time.Now().UTC()
	return u.dossiers.UpdateMetadata(ctx, d.OrderID, d.DossierID, merged, d.UpdatedAt, now)
}

func (u *DossierUseCase) recordMetadataUpdate(ctx context.Context, p entities.Principal, mp entities.MetadataPatch, d entities.Dossier) {
	event := entities.NewDossierEvent(d.DossierID, entities.EventMetadataUpdated, p.EventSource(), map[string]interface{}{
		"updatedFields": mp.UpdatedFields(),
	})
	if _, err := u.events.Append(ctx, event); err != nil {
		log.Printf("[dossier][usecase] event append failed after metadata write order_id=%s dossier_id=%s err=%v",
			d.OrderID, d.DossierID, err)
	}
}
