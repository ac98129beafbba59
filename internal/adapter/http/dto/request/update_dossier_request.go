package request

import "encoding/json"

// UpdateDossierRequest carries a partial dossier update. Either field may be
// absent; when both are present the status change is applied first.
type UpdateDossierRequest struct {
	Status   string          `json:"status,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

func (r UpdateDossierRequest) HasStatus() bool { return r.Status != "" }

func (r UpdateDossierRequest) HasMetadata() bool {
	trimmed := string(r.Metadata)
	return len(r.Metadata) > 0 && trimmed != "null" && trimmed != "{}"
}

func (r UpdateDossierRequest) IsEmpty() bool {
	return !r.HasStatus() && !r.HasMetadata()
}
