package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DossierType identifies the fulfillment concern a dossier tracks.
//
// Each order gets at most one dossier per type; the set is decided at
// order-creation time from the line items' product categories.

type DossierType string

const (
	DossierTypeShipping     DossierType = "shipping"
	DossierTypeAdminEnedis  DossierType = "admin_enedis"
	DossierTypeAdminConsuel DossierType = "admin_consuel"
	DossierTypeInstallation DossierType = "installation"
)

// DossierStatus is a state within a type's own state machine. The value sets
// are disjoint per type and closed; only ValidateTransition may approve a
// change from one to another.

type DossierStatus string

// Shipping statuses.
const (
	ShippingReceived  DossierStatus = "received"
	ShippingPreparing DossierStatus = "preparing"
	ShippingShipped   DossierStatus = "shipped"
	ShippingDelivered DossierStatus = "delivered"
	ShippingIssue     DossierStatus = "issue"
)

// Administrative statuses (shared by admin_enedis and admin_consuel).
const (
	AdminNotStarted DossierStatus = "not_started"
	AdminInProgress DossierStatus = "in_progress"
	AdminValidated  DossierStatus = "validated"
	AdminRejected   DossierStatus = "rejected"
)

// Installation statuses.
const (
	InstallationVTPending   DossierStatus = "vt_pending"
	InstallationVTCompleted DossierStatus = "vt_completed"
	InstallationAwaitingBE  DossierStatus = "awaiting_be"
	InstallationValidated   DossierStatus = "validated"
)

// Dossier is one fulfillment-tracking record for one concern of one order.
//
// Storage model (DynamoDB):
//   - PK: orderId, SK: dossierId
//
// Dossiers are created once per order (batch), mutated through status and
// metadata updates, and never deleted.
type Dossier struct {
	OrderID   string          `json:"orderId"`
	DossierID string          `json:"dossierId"`
	Type      DossierType     `json:"type"`
	Status    DossierStatus   `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Metadata  DossierMetadata `json:"metadata"`
}

// NewDossier builds a dossier in the type's initial status. The dossier id is
// prefixed with the type so operators can read it at a glance.
func NewDossier(orderID string, t DossierType, now time.Time) (Dossier, error) {
	initial, err := InitialStatus(t)
	if err != nil {
		return Dossier{}, err
	}
	return Dossier{
		OrderID:   orderID,
		DossierID: fmt.Sprintf("%s_%s", t, uuid.NewString()),
		Type:      t,
		Status:    initial,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  EmptyMetadataFor(t),
	}, nil
}

// EventType classifies entries of the dossier audit trail.

type EventType string

const (
	EventStatusChanged   EventType = "status_changed"
	EventDocumentAdded   EventType = "document_added"
	EventDocumentRemoved EventType = "document_removed"
	EventVTSubmitted     EventType = "vt_submitted"
	EventVTSentToBE      EventType = "vt_sent_to_be"
	EventMetadataUpdated EventType = "metadata_updated"
)

// EventSource records who caused an event.

type EventSource string

const (
	EventSourceSystem EventSource = "system"
	EventSourceClient EventSource = "client"
	EventSourceAdmin  EventSource = "admin"
)

// DossierEvent is one append-only audit record. Events are never mutated or
// deleted; they are the sole queryable history of a dossier but never its
// source of truth (current state lives on the dossier record).
type DossierEvent struct {
	DossierID string                 `json:"dossierId"`
	EventID   string                 `json:"eventId"`
	EventType EventType              `json:"eventType"`
	Timestamp time.Time              `json:"timestamp"`
	Source    EventSource            `json:"source"`
	Data      map[string]interface{} `json:"data"`
}

// NewDossierEvent stamps an event with a timestamp-prefixed id so that the
// lexicographic sort key order matches chronological order.
func NewDossierEvent(dossierID string, et EventType, source EventSource, data map[string]interface{}) DossierEvent {
	now := time.Now().UTC()
	if data == nil {
		data = map[string]interface{}{}
	}
	return DossierEvent{
		DossierID: dossierID,
		EventID:   fmt.Sprintf("%013d_%s", now.UnixMilli(), uuid.NewString()),
		EventType: et,
		Timestamp: now,
		Source:    source,
		Data:      data,
	}
}

// DossierDocument references an uploaded file bound to a dossier. The record
// is created when an upload is finalized, never updated in place, and removed
// together with its storage object.
type DossierDocument struct {
	DocumentID  string    `json:"documentId"`
	DossierID   string    `json:"dossierId"`
	OrderID     string    `json:"orderId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"storageKey"`
	UploadedAt  time.Time `json:"uploadedAt"`
	UploadedBy  string    `json:"uploadedBy"`
}
