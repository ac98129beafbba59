package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// MetadataPatch is a partial, type-specific metadata update. Pointer fields
// distinguish "not supplied" from "set to zero"; unknown fields are rejected
// at decode time.
type MetadataPatch interface {
	// Apply merges the patch into existing metadata and returns the merged
	// value. The input is never mutated.
	Apply(m DossierMetadata) (DossierMetadata, error)
	// UpdatedFields lists the field names the patch touches, for the
	// metadata_updated audit event.
	UpdatedFields() []string
}

// DecodeMetadataPatch parses a partial metadata payload against the shape of
// the dossier type. Fields outside the type's shape fail with
// ErrInvalidMetadata.
func DecodeMetadataPatch(t DossierType, raw []byte) (MetadataPatch, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidMetadata)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var (
		patch MetadataPatch
		err   error
	)
	switch t {
	case DossierTypeShipping:
		p := &ShippingMetadataPatch{}
		err = dec.Decode(p)
		patch = p
	case DossierTypeAdminEnedis, DossierTypeAdminConsuel:
		p := &AdminMetadataPatch{}
		err = dec.Decode(p)
		patch = p
	case DossierTypeInstallation:
		p := &InstallationMetadataPatch{}
		err = dec.Decode(p)
		patch = p
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDossierType, t)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return patch, nil
}

type ShippingMetadataPatch struct {
	Carrier           *string `json:"carrier"`
	TrackingNumber    *string `json:"trackingNumber"`
	EstimatedDelivery *string `json:"estimatedDelivery"`
	DeliveryProofURL  *string `json:"deliveryProofUrl"`
}

func (p *ShippingMetadataPatch) Apply(m DossierMetadata) (DossierMetadata, error) {
	cur, err := shippingOrEmpty(m)
	if err != nil {
		return nil, err
	}
	out := *cur
	if p.Carrier != nil {
		out.Carrier = *p.Carrier
	}
	if p.TrackingNumber != nil {
		out.TrackingNumber = *p.TrackingNumber
	}
	if p.EstimatedDelivery != nil {
		out.EstimatedDelivery = *p.EstimatedDelivery
	}
	if p.DeliveryProofURL != nil {
		out.DeliveryProofURL = *p.DeliveryProofURL
	}
	return &out, nil
}

func (p *ShippingMetadataPatch) UpdatedFields() []string {
	var fields []string
	if p.Carrier != nil {
		fields = append(fields, "carrier")
	}
	if p.TrackingNumber != nil {
		fields = append(fields, "trackingNumber")
	}
	if p.EstimatedDelivery != nil {
		fields = append(fields, "estimatedDelivery")
	}
	if p.DeliveryProofURL != nil {
		fields = append(fields, "deliveryProofUrl")
	}
	return fields
}

type AdminMetadataPatch struct {
	ReferenceNumber *string    `json:"referenceNumber"`
	SubmissionDate  *time.Time `json:"submissionDate"`
	ResponseDate    *time.Time `json:"responseDate"`
	RejectionReason *string    `json:"rejectionReason"`
}

func (p *AdminMetadataPatch) Apply(m DossierMetadata) (DossierMetadata, error) {
	cur, err := adminOrEmpty(m)
	if err != nil {
		return nil, err
	}
	out := *cur
	if p.ReferenceNumber != nil {
		out.ReferenceNumber = *p.ReferenceNumber
	}
	if p.SubmissionDate != nil {
		out.SubmissionDate = p.SubmissionDate
	}
	if p.ResponseDate != nil {
		out.ResponseDate = p.ResponseDate
	}
	if p.RejectionReason != nil {
		out.RejectionReason = *p.RejectionReason
	}
	return &out, nil
}

func (p *AdminMetadataPatch) UpdatedFields() []string {
	var fields []string
	if p.ReferenceNumber != nil {
		fields = append(fields, "referenceNumber")
	}
	if p.SubmissionDate != nil {
		fields = append(fields, "submissionDate")
	}
	if p.ResponseDate != nil {
		fields = append(fields, "responseDate")
	}
	if p.RejectionReason != nil {
		fields = append(fields, "rejectionReason")
	}
	return fields
}

type InstallationMetadataPatch struct {
	VTData            *VTFormData `json:"vtData"`
	VTSubmittedAt     *time.Time  `json:"vtSubmittedAt"`
	VTSentToBEAt      *time.Time  `json:"vtSentToBeAt"`
	InstallerAssigned *string     `json:"installerAssigned"`
	InstallationDate  *string     `json:"installationDate"`
}

func (p *InstallationMetadataPatch) Apply(m DossierMetadata) (DossierMetadata, error) {
	cur, err := installationOrEmpty(m)
	if err != nil {
		return nil, err
	}
	out := *cur
	if p.VTData != nil {
		out.VTData = p.VTData
	}
	if p.VTSubmittedAt != nil {
		out.VTSubmittedAt = p.VTSubmittedAt
	}
	if p.VTSentToBEAt != nil {
		out.VTSentToBEAt = p.VTSentToBEAt
	}
	if p.InstallerAssigned != nil {
		out.InstallerAssigned = *p.InstallerAssigned
	}
	if p.InstallationDate != nil {
		out.InstallationDate = *p.InstallationDate
	}
	return &out, nil
}

func (p *InstallationMetadataPatch) UpdatedFields() []string {
	var fields []string
	if p.VTData != nil {
		fields = append(fields, "vtData")
	}
	if p.VTSubmittedAt != nil {
		fields = append(fields, "vtSubmittedAt")
	}
	if p.VTSentToBEAt != nil {
		fields = append(fields, "vtSentToBeAt")
	}
	if p.InstallerAssigned != nil {
		fields = append(fields, "installerAssigned")
	}
	if p.InstallationDate != nil {
		fields = append(fields, "installationDate")
	}
	return fields
}

func shippingOrEmpty(m DossierMetadata) (*ShippingMetadata, error) {
	if m == nil {
		return &ShippingMetadata{}, nil
	}
	cur, ok := m.(*ShippingMetadata)
	if !ok {
		return nil, ErrMetadataTypeMismatch
	}
	return cur, nil
}

func adminOrEmpty(m DossierMetadata) (*AdminMetadata, error) {
	if m == nil {
		return &AdminMetadata{}, nil
	}
	cur, ok := m.(*AdminMetadata)
	if !ok {
		return nil, ErrMetadataTypeMismatch
	}
	return cur, nil
}

func installationOrEmpty(m DossierMetadata) (*InstallationMetadata, error) {
	if m == nil {
		return &InstallationMetadata{}, nil
	}
	cur, ok := m.(*InstallationMetadata)
	if !ok {
		return nil, ErrMetadataTypeMismatch
	}
	return cur, nil
}
