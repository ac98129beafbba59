package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMetadataTypeMismatch = errors.New("metadata shape does not match dossier type")
	ErrInvalidMetadata      = errors.New("invalid metadata payload")
)

// DossierMetadata is the type-discriminated payload attached to a dossier.
// The concrete shape is fixed by the dossier's type at creation and never
// carries fields outside that shape; it is deliberately NOT a free-form map.
type DossierMetadata interface {
	isDossierMetadata()
}

// ShippingMetadata tracks carrier and delivery information.
type ShippingMetadata struct {
	Carrier           string `json:"carrier,omitempty"`
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
	DeliveryProofURL  string `json:"deliveryProofUrl,omitempty"`
}

func (*ShippingMetadata) isDossierMetadata() {}

// AdminMetadata tracks an administrative procedure (Enedis or Consuel).
type AdminMetadata struct {
	ReferenceNumber string     `json:"referenceNumber,omitempty"`
	SubmissionDate  *time.Time `json:"submissionDate,omitempty"`
	ResponseDate    *time.Time `json:"responseDate,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

func (*AdminMetadata) isDossierMetadata() {}

// InstallationMetadata tracks the technical visit flow and installer
// scheduling milestones.
type InstallationMetadata struct {
	VTData            *VTFormData `json:"vtData,omitempty"`
	VTSubmittedAt     *time.Time  `json:"vtSubmittedAt,omitempty"`
	VTSentToBEAt      *time.Time  `json:"vtSentToBeAt,omitempty"`
	InstallerAssigned string      `json:"installerAssigned,omitempty"`
	InstallationDate  string      `json:"installationDate,omitempty"`
}

func (*InstallationMetadata) isDossierMetadata() {}

// EmptyMetadataFor returns the zero metadata value of the right shape for a
// dossier type.
func EmptyMetadataFor(t DossierType) DossierMetadata {
	switch t {
	case DossierTypeShipping:
		return &ShippingMetadata{}
	case DossierTypeAdminEnedis, DossierTypeAdminConsuel:
		return &AdminMetadata{}
	case DossierTypeInstallation:
		return &InstallationMetadata{}
	default:
		return nil
	}
}

// MetadataMatchesType reports whether a metadata value has the shape required
// by the dossier type.
func MetadataMatchesType(t DossierType, m DossierMetadata) bool {
	switch t {
	case DossierTypeShipping:
		_, ok := m.(*ShippingMetadata)
		return ok
	case DossierTypeAdminEnedis, DossierTypeAdminConsuel:
		_, ok := m.(*AdminMetadata)
		return ok
	case DossierTypeInstallation:
		_, ok := m.(*InstallationMetadata)
		return ok
	default:
		return false
	}
}

// DecodeMetadata parses a stored metadata document into the concrete shape
// for the dossier type. Used by the persistence layer.
func DecodeMetadata(t DossierType, raw []byte) (DossierMetadata, error) {
	m := EmptyMetadataFor(t)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDossierType, t)
	}
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return m, nil
}
