package entities

import "fmt"

// Technical visit (VT) form vocabulary. The form is filled by the client
// after purchase and gates the installation dossier's vt_pending →
// vt_completed transition.

var ValidRoofTypes = []string{"flat", "sloped_tiles", "sloped_slate", "metal", "other"}

var ValidElectricalDistances = []string{"<30m", "30-60m", "60-100m", ">100m"}

// MinVTPhotos is the minimum number of already-uploaded photos a VT
// submission must reference.
const MinVTPhotos = 3

// VTFormData is the technical-visit survey stored inside the installation
// dossier's metadata.
type VTFormData struct {
	RoofType           string   `json:"roofType"`
	MountingHeight     float64  `json:"mountingHeight"`
	ElectricalDistance string   `json:"electricalDistance"`
	Obstacles          []string `json:"obstacles"`
	Comments           string   `json:"comments,omitempty"`
	PhotoIDs           []string `json:"photoIds"`
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the VT form field by field and returns every failure, not
// just the first one, so the client can fix the whole form in one pass.
func (f VTFormData) Validate() []FieldError {
	var errs []FieldError

	if f.RoofType == "" {
		errs = append(errs, FieldError{Field: "roofType", Message: "roof type is required"})
	} else if !containsString(ValidRoofTypes, f.RoofType) {
		errs = append(errs, FieldError{Field: "roofType", Message: "invalid roof type"})
	}

	if f.MountingHeight < 0 {
		errs = append(errs, FieldError{Field: "mountingHeight", Message: "mounting height must be a positive number"})
	}

	if f.ElectricalDistance == "" {
		errs = append(errs, FieldError{Field: "electricalDistance", Message: "electrical panel distance is required"})
	} else if !containsString(ValidElectricalDistances, f.ElectricalDistance) {
		errs = append(errs, FieldError{Field: "electricalDistance", Message: "invalid electrical panel distance"})
	}

	if f.Obstacles == nil {
		errs = append(errs, FieldError{Field: "obstacles", Message: "obstacles must be a list"})
	}

	if len(f.PhotoIDs) < MinVTPhotos {
		errs = append(errs, FieldError{
			Field:   "photoIds",
			Message: fmt.Sprintf("at least %d photos are required (%d provided)", MinVTPhotos, len(f.PhotoIDs)),
		})
	}

	return errs
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
