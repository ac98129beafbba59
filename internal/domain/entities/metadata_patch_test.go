package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMetadataPatch_RejectsFieldsOutsideTheShape(t *testing.T) {
	// trackingNumber belongs to shipping, not to an admin procedure.
	_, err := DecodeMetadataPatch(DossierTypeAdminEnedis, []byte(`{"trackingNumber":"XY123"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestDecodeMetadataPatch_EmptyPayload(t *testing.T) {
	_, err := DecodeMetadataPatch(DossierTypeShipping, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestDecodeMetadataPatch_UnknownType(t *testing.T) {
	_, err := DecodeMetadataPatch("warranty", []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDossierType)
}

func TestDecodeMetadataPatch_MalformedJSON(t *testing.T) {
	_, err := DecodeMetadataPatch(DossierTypeShipping, []byte(`{"carrier":`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestShippingMetadataPatch_PartialApplyPreservesOtherFields(t *testing.T) {
	patch, err := DecodeMetadataPatch(DossierTypeShipping, []byte(`{"trackingNumber":"COL-42","carrier":"Colissimo"}`))
	require.NoError(t, err)

	existing := &ShippingMetadata{
		Carrier:           "DHL",
		EstimatedDelivery: "2026-09-15",
	}
	merged, err := patch.Apply(existing)
	require.NoError(t, err)

	got, ok := merged.(*ShippingMetadata)
	require.True(t, ok)
	assert.Equal(t, "Colissimo", got.Carrier)
	assert.Equal(t, "COL-42", got.TrackingNumber)
	assert.Equal(t, "2026-09-15", got.EstimatedDelivery)

	// input untouched
	assert.Equal(t, "DHL", existing.Carrier)
	assert.Equal(t, "", existing.TrackingNumber)
}

func TestShippingMetadataPatch_ExplicitEmptyStringClearsField(t *testing.T) {
	patch, err := DecodeMetadataPatch(DossierTypeShipping, []byte(`{"deliveryProofUrl":""}`))
	require.NoError(t, err)

	merged, err := patch.Apply(&ShippingMetadata{DeliveryProofURL: "https://bucket/proof.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "", merged.(*ShippingMetadata).DeliveryProofURL)
	assert.Equal(t, []string{"deliveryProofUrl"}, patch.UpdatedFields())
}

func TestAdminMetadataPatch_ApplyAndUpdatedFields(t *testing.T) {
	patch, err := DecodeMetadataPatch(DossierTypeAdminConsuel, []byte(`{"referenceNumber":"ENE-2026-081","submissionDate":"2026-08-20T10:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"referenceNumber", "submissionDate"}, patch.UpdatedFields())

	merged, err := patch.Apply(&AdminMetadata{RejectionReason: "missing signature"})
	require.NoError(t, err)

	got := merged.(*AdminMetadata)
	assert.Equal(t, "ENE-2026-081", got.ReferenceNumber)
	require.NotNil(t, got.SubmissionDate)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), got.SubmissionDate.UTC())
	assert.Equal(t, "missing signature", got.RejectionReason)
	assert.Nil(t, got.ResponseDate)
}

func TestMetadataPatch_ApplyOnNilStartsFromZeroShape(t *testing.T) {
	patch, err := DecodeMetadataPatch(DossierTypeInstallation, []byte(`{"installerAssigned":"EolTech"}`))
	require.NoError(t, err)

	merged, err := patch.Apply(nil)
	require.NoError(t, err)
	assert.Equal(t, "EolTech", merged.(*InstallationMetadata).InstallerAssigned)
}

func TestMetadataPatch_ShapeMismatchFails(t *testing.T) {
	patch, err := DecodeMetadataPatch(DossierTypeShipping, []byte(`{"carrier":"DHL"}`))
	require.NoError(t, err)

	_, err = patch.Apply(&AdminMetadata{})
	assert.ErrorIs(t, err, ErrMetadataTypeMismatch)
}

func TestDecodeMetadata_RoundsBackToTheRightShape(t *testing.T) {
	m, err := DecodeMetadata(DossierTypeInstallation, []byte(`{"installerAssigned":"EolTech","vtSubmittedAt":"2026-08-01T09:30:00Z"}`))
	require.NoError(t, err)

	got, ok := m.(*InstallationMetadata)
	require.True(t, ok)
	assert.Equal(t, "EolTech", got.InstallerAssigned)
	require.NotNil(t, got.VTSubmittedAt)

	empty, err := DecodeMetadata(DossierTypeShipping, nil)
	require.NoError(t, err)
	assert.Equal(t, &ShippingMetadata{}, empty)

	_, err = DecodeMetadata("warranty", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownDossierType)
}
