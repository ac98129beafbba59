package handlers

import (
	"errors"
	"log"
	"net/http"

	request "eolia_backend/internal/adapter/http/dto/request"
	response "eolia_backend/internal/adapter/http/dto/response"
	"eolia_backend/internal/adapter/http/middleware"
	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase"
	"eolia_backend/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles dossier document routes. Uploads are a two-step
// flow: request a presigned URL, PUT the file to S3, then attach.

type DocumentHandler struct {
	usecase usecase.IDossierDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDossierDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// CreateUploadURL issues a presigned PUT location for a declared file.
func (h *DocumentHandler) CreateUploadURL(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	p := middleware.PrincipalFrom(c)

	var req request.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[document][handler] upload-url invalid payload order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ticket, err := h.usecase.IssueUploadURL(c.Request.Context(), p, orderID, dossierID, req.FileName, req.ContentType, req.Size)
	if err != nil {
		log.Printf("[document][handler] upload-url failed order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.UploadTicketResponse{
		DocumentID: ticket.DocumentID,
		UploadURL:  ticket.UploadURL,
		StorageKey: ticket.StorageKey,
		ExpiresIn:  ticket.ExpiresIn,
	})
}

// AttachDocument finalizes an upload and appends a document_added event.
func (h *DocumentHandler) AttachDocument(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	p := middleware.PrincipalFrom(c)

	var req request.AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[document][handler] attach invalid payload order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.usecase.AttachDocument(c.Request.Context(), p, orderID, dossierID, usecase.AttachDocumentInput{
		DocumentID:  req.DocumentID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
		StorageKey:  req.StorageKey,
	})
	if err != nil {
		log.Printf("[document][handler] attach failed order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc, "", 0))
}

// ListDocuments returns the dossier's documents with fresh download URLs.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	p := middleware.PrincipalFrom(c)

	docs, err := h.usecase.ListDocuments(c.Request.Context(), p, orderID, dossierID)
	if err != nil {
		log.Printf("[document][handler] list failed order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		respondDocumentError(c, err)
		return
	}

	out := make([]response.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, response.FromDocument(d.Document, d.DownloadURL, d.ExpiresIn))
	}
	c.JSON(http.StatusOK, out)
}

// RemoveDocument deletes a document and its storage object.
func (h *DocumentHandler) RemoveDocument(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	documentID := c.Param("document_id")
	p := middleware.PrincipalFrom(c)

	if err := h.usecase.RemoveDocument(c.Request.Context(), p, orderID, dossierID, documentID); err != nil {
		log.Printf("[document][handler] remove failed order_id=%s dossier_id=%s document_id=%s err=%v", orderID, dossierID, documentID, err)
		respondDocumentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondDocumentError(c *gin.Context, err error) {
	var ur *entities.UploadRejectedError
	if errors.As(err, &ur) {
		appErr := pkg.NewDomainErrorSimple("UPLOAD_REJECTED", ur.Message, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	appErr := mapDocumentError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFileDetails), errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	default:
		return mapDossierError(err)
	}
}
