package response

import (
	"time"

	"eolia_backend/internal/domain/entities"
)

type DossierEventResponse struct {
	DossierID string                 `json:"dossierId"`
	EventID   string                 `json:"eventId"`
	EventType string                 `json:"eventType"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
}

func FromDossierEvent(e entities.DossierEvent) DossierEventResponse {
	return DossierEventResponse{
		DossierID: e.DossierID,
		EventID:   e.EventID,
		EventType: string(e.EventType),
		Timestamp: e.Timestamp,
		Source:    string(e.Source),
		Data:      e.Data,
	}
}

func FromDossierEvents(events []entities.DossierEvent) []DossierEventResponse {
	out := make([]DossierEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromDossierEvent(e))
	}
	return out
}
