package response

import (
	"time"

	"eolia_backend/internal/domain/entities"
)

type DocumentResponse struct {
	DocumentID  string    `json:"documentId"`
	DossierID   string    `json:"dossierId"`
	OrderID     string    `json:"orderId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	ExpiresIn   int64     `json:"expiresIn,omitempty"`
}

// FromDocument renders a document record; the storage key stays internal.
func FromDocument(d entities.DossierDocument, downloadURL string, expiresIn int64) DocumentResponse {
	return DocumentResponse{
		DocumentID:  d.DocumentID,
		DossierID:   d.DossierID,
		OrderID:     d.OrderID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		Size:        d.Size,
		UploadedAt:  d.UploadedAt,
		UploadedBy:  d.UploadedBy,
		DownloadURL: downloadURL,
		ExpiresIn:   expiresIn,
	}
}

// UploadTicketResponse is the presigned PUT location handed to the client.
type UploadTicketResponse struct {
	DocumentID string `json:"documentId"`
	UploadURL  string `json:"uploadUrl"`
	StorageKey string `json:"storageKey"`
	ExpiresIn  int64  `json:"expiresIn"`
}
