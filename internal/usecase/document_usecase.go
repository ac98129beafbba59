package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidDocumentID  = errors.New("invalid document id")
	ErrMissingFileDetails = errors.New("fileName, contentType and size are required")
)

// UploadTicket is the presigned PUT location handed to the client, plus the
// document identity it must echo back when finalizing the upload.
type UploadTicket struct {
	DocumentID string
	UploadURL  string
	StorageKey string
	ExpiresIn  int64
}

// DocumentWithURL pairs a document record with a fresh presigned download
// location.
type DocumentWithURL struct {
	Document    entities.DossierDocument
	DownloadURL string
	ExpiresIn   int64
}

// AttachDocumentInput finalizes an upload: the client performed the PUT and
// reports the metadata it uploaded under the issued key.
type AttachDocumentInput struct {
	DocumentID  string
	FileName    string
	ContentType string
	Size        int64
	StorageKey  string
}

// IDossierDocumentUseCase binds uploaded files to dossiers. File bytes never
// pass through this service; the blob store issues time-bounded URLs.

type IDossierDocumentUseCase interface {
	IssueUploadURL(ctx context.Context, p entities.Principal, orderID, dossierID, fileName, contentType string, size int64) (UploadTicket, error)
	AttachDocument(ctx context.Context, p entities.Principal, orderID, dossierID string, in AttachDocumentInput) (entities.DossierDocument, error)
	ListDocuments(ctx context.Context, p entities.Principal, orderID, dossierID string) ([]DocumentWithURL, error)
	RemoveDocument(ctx context.Context, p entities.Principal, orderID, dossierID, documentID string) error
}

type DossierDocumentUseCase struct {
	documents interfaces.IDossierDocumentRepository
	dossiers  interfaces.IDossierRepository
	events    interfaces.IDossierEventRepository
	orders    interfaces.IOrderRepository
	storage   interfaces.IDocumentStorage
}

var _ IDossierDocumentUseCase = (*DossierDocumentUseCase)(nil)

func NewDossierDocumentUseCase(
	documents interfaces.IDossierDocumentRepository,
	dossiers interfaces.IDossierRepository,
	events interfaces.IDossierEventRepository,
	orders interfaces.IOrderRepository,
	storage interfaces.IDocumentStorage,
) *DossierDocumentUseCase {
	return &DossierDocumentUseCase{documents: documents, dossiers: dossiers, events: events, orders: orders, storage: storage}
}

// IssueUploadURL validates the declared file metadata and returns a
// presigned PUT location. Nothing is persisted yet; the record is written
// when the client finalizes via AttachDocument.
func (u *DossierDocumentUseCase) IssueUploadURL(ctx context.Context, p entities.Principal, orderID, dossierID, fileName, contentType string, size int64) (UploadTicket, error) {
	if strings.TrimSpace(fileName) == "" || strings.TrimSpace(contentType) == "" || size == 0 {
		return UploadTicket{}, ErrMissingFileDetails
	}

	order, d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return UploadTicket{}, err
	}

	if err := entities.ValidateDocumentFile(fileName, contentType, size); err != nil {
		return UploadTicket{}, err
	}

	key := entities.DocumentStorageKey(order.UserID, order.OrderID, string(d.Type), fileName)
	presigned, err := u.storage.PresignUpload(ctx, key, contentType, size)
	if err != nil {
		return UploadTicket{}, err
	}

	return UploadTicket{
		DocumentID: uuid.NewString(),
		UploadURL:  presigned.URL,
		StorageKey: key,
		ExpiresIn:  presigned.ExpiresIn,
	}, nil
}

// AttachDocument records a finalized upload against the dossier and appends
// a document_added event.
func (u *DossierDocumentUseCase) AttachDocument(ctx context.Context, p entities.Principal, orderID, dossierID string, in AttachDocumentInput) (entities.DossierDocument, error) {
	if strings.TrimSpace(in.FileName) == "" || strings.TrimSpace(in.ContentType) == "" || in.Size == 0 || strings.TrimSpace(in.StorageKey) == "" {
		return entities.DossierDocument{}, ErrMissingFileDetails
	}

	_, d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return entities.DossierDocument{}, err
	}

	if err := entities.ValidateDocumentFile(in.FileName, in.ContentType, in.Size); err != nil {
		return entities.DossierDocument{}, err
	}

	documentID := strings.TrimSpace(in.DocumentID)
	if documentID == "" {
		documentID = uuid.NewString()
	}

	doc := entities.DossierDocument{
		DocumentID:  documentID,
		DossierID:   d.DossierID,
		OrderID:     d.OrderID,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        in.Size,
		StorageKey:  in.StorageKey,
		UploadedAt:  time.Now().UTC(),
		UploadedBy:  p.SubjectID,
	}

	created, err := u.documents.Create(ctx, doc)
	if err != nil {
		return entities.DossierDocument{}, err
	}

	event := entities.NewDossierEvent(d.DossierID, entities.EventDocumentAdded, p.EventSource(), map[string]interface{}{
		"documentId": created.DocumentID,
		"fileName":   created.FileName,
	})
	if _, err := u.events.Append(ctx, event); err != nil {
		log.Printf("[document][usecase] event append failed after attach dossier_id=%s document_id=%s err=%v", d.DossierID, created.DocumentID, err)
	}
	return created, nil
}

func (u *DossierDocumentUseCase) ListDocuments(ctx context.Context, p entities.Principal, orderID, dossierID string) ([]DocumentWithURL, error) {
	_, d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return nil, err
	}

	docs, err := u.documents.ListByDossierID(ctx, d.DossierID)
	if err != nil {
		return nil, err
	}

	out := make([]DocumentWithURL, 0, len(docs))
	for _, doc := range docs {
		presigned, err := u.storage.PresignDownload(ctx, doc.StorageKey)
		if err != nil {
			return nil, err
		}
		out = append(out, DocumentWithURL{Document: doc, DownloadURL: presigned.URL, ExpiresIn: presigned.ExpiresIn})
	}
	return out, nil
}

// RemoveDocument deletes the storage object first, then the record, then
// appends a document_removed event. A document reachable through the wrong
// dossier or order is treated as not found.
func (u *DossierDocumentUseCase) RemoveDocument(ctx context.Context, p entities.Principal, orderID, dossierID, documentID string) error {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return ErrInvalidDocumentID
	}

	_, d, err := u.loadDossier(ctx, p, orderID, dossierID)
	if err != nil {
		return err
	}

	doc, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.DocumentID == "" || doc.DossierID != d.DossierID || doc.OrderID != d.OrderID {
		return ErrDocumentNotFound
	}

	if err := u.storage.Delete(ctx, doc.StorageKey); err != nil {
		return err
	}
	if err := u.documents.Delete(ctx, doc.DocumentID); err != nil {
		return err
	}

	event := entities.NewDossierEvent(d.DossierID, entities.EventDocumentRemoved, p.EventSource(), map[string]interface{}{
		"documentId": doc.DocumentID,
		"fileName":   doc.FileName,
	})
	if _, err := u.events.Append(ctx, event); err != nil {
		log.Printf("[document][usecase] event append failed after remove dossier_id=%s document_id=%s err=%v", d.DossierID, doc.DocumentID, err)
	}
	return nil
}

func (u *DossierDocumentUseCase) loadDossier(ctx context.Context, p entities.Principal, orderID, dossierID string) (entities.Order, entities.Dossier, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.Dossier{}, ErrInvalidOrderID
	}
	dossierID = strings.TrimSpace(dossierID)
	if dossierID == "" {
		return entities.Order{}, entities.Dossier{}, ErrInvalidDossierID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.Dossier{}, err
	}
	if order.OrderID == "" {
		return entities.Order{}, entities.Dossier{}, ErrOrderNotFound
	}
	if !p.CanAccessOrder(order.UserID) {
		return entities.Order{}, entities.Dossier{}, ErrForbidden
	}

	d, err := u.dossiers.Get(ctx, orderID, dossierID)
	if err != nil {
		return entities.Order{}, entities.Dossier{}, err
	}
	if d.DossierID == "" {
		return entities.Order{}, entities.Dossier{}, ErrDossierNotFound
	}
	return order, d, nil
}
