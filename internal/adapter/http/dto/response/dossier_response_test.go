package response

import (
	"testing"
	"time"

	"eolia_backend/internal/domain/entities"
)

func TestFromDossier(t *testing.T) {
	now := time.Now().UTC()
	d := entities.Dossier{
		OrderID:   "ord-1",
		DossierID: "shipping_d1",
		Type:      entities.DossierTypeShipping,
		Status:    entities.ShippingPreparing,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  &entities.ShippingMetadata{Carrier: "Colissimo"},
	}

	res := FromDossier(d)
	if res.OrderID != "ord-1" || res.DossierID != "shipping_d1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Type != "shipping" || res.Status != "preparing" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	meta, ok := res.Metadata.(*entities.ShippingMetadata)
	if !ok || meta.Carrier != "Colissimo" {
		t.Fatalf("unexpected metadata: %+v", res.Metadata)
	}
}

func TestFromDossierWithEvents(t *testing.T) {
	d := entities.Dossier{OrderID: "ord-1", DossierID: "shipping_d1", Type: entities.DossierTypeShipping, Status: entities.ShippingReceived}
	events := []entities.DossierEvent{
		{DossierID: "shipping_d1", EventID: "ev-1", EventType: entities.EventStatusChanged, Source: entities.EventSourceSystem, Data: map[string]interface{}{"message": "Dossier created"}},
	}

	res := FromDossierWithEvents(d, events)
	if res.DossierID != "shipping_d1" || len(res.Events) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Events[0].EventType != "status_changed" || res.Events[0].Source != "system" {
		t.Fatalf("unexpected event mapping: %+v", res.Events[0])
	}
	if res.Events[0].Data["message"] != "Dossier created" {
		t.Fatalf("event data lost: %+v", res.Events[0].Data)
	}
}

func TestFromDossiers(t *testing.T) {
	res := FromDossiers("ord-1", nil)
	if res.OrderID != "ord-1" {
		t.Fatalf("unexpected order id: %+v", res)
	}
	if res.Dossiers == nil || len(res.Dossiers) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", res.Dossiers)
	}
}
