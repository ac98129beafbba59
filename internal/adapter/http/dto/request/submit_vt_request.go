package request

import "eolia_backend/internal/domain/entities"

// SubmitVTRequest is the technical-visit form as posted by the storefront.
type SubmitVTRequest struct {
	RoofType           string   `json:"roofType"`
	MountingHeight     float64  `json:"mountingHeight"`
	ElectricalDistance string   `json:"electricalDistance"`
	Obstacles          []string `json:"obstacles"`
	Comments           string   `json:"comments"`
	PhotoIDs           []string `json:"photoIds"`
}

// ToFormData maps the payload as-is; field validation happens in the domain
// so the client gets every failure back in one response.
func (r SubmitVTRequest) ToFormData() entities.VTFormData {
	return entities.VTFormData{
		RoofType:           r.RoofType,
		MountingHeight:     r.MountingHeight,
		ElectricalDistance: r.ElectricalDistance,
		Obstacles:          r.Obstacles,
		Comments:           r.Comments,
		PhotoIDs:           r.PhotoIDs,
	}
}
