package response

import (
	"time"

	"eolia_backend/internal/domain/entities"
)

type DossierResponse struct {
	OrderID   string                   `json:"orderId"`
	DossierID string                   `json:"dossierId"`
	Type      string                   `json:"type"`
	Status    string                   `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Metadata  entities.DossierMetadata `json:"metadata"`
}

func FromDossier(d entities.Dossier) DossierResponse {
	return DossierResponse{
		OrderID:   d.OrderID,
		DossierID: d.DossierID,
		Type:      string(d.Type),
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Metadata:  d.Metadata,
	}
}

// DossierDetailResponse is a dossier together with its full audit history.
type DossierDetailResponse struct {
	DossierResponse
	Events []DossierEventResponse `json:"events"`
}

func FromDossierWithEvents(d entities.Dossier, events []entities.DossierEvent) DossierDetailResponse {
	return DossierDetailResponse{
		DossierResponse: FromDossier(d),
		Events:          FromDossierEvents(events),
	}
}

type DossierListResponse struct {
	OrderID  string            `json:"orderId"`
	Dossiers []DossierResponse `json:"dossiers"`
}

func FromDossiers(orderID string, dossiers []entities.Dossier) DossierListResponse {
	out := make([]DossierResponse, 0, len(dossiers))
	for _, d := range dossiers {
		out = append(out, FromDossier(d))
	}
	return DossierListResponse{OrderID: orderID, Dossiers: out}
}
