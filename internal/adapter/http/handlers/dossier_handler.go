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

// DossierHandler handles HTTP requests for dossier tracking.

type DossierHandler struct {
	usecase usecase.IDossierUseCase
}

func NewDossierHandler(uc usecase.IDossierUseCase) *DossierHandler {
	return &DossierHandler{usecase: uc}
}

// ListDossiers returns every dossier of an order.
func (h *DossierHandler) ListDossiers(c *gin.Context) {
	orderID := c.Param("order_id")
	p := middleware.PrincipalFrom(c)

	dossiers, err := h.usecase.ListDossiers(c.Request.Context(), p, orderID)
	if err != nil {
		log.Printf("[dossier][handler] list failed order_id=%s err=%v", orderID, err)
		respondDossierError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDossiers(orderID, dossiers))
}

// GetDossier returns one dossier together with its audit history.
func (h *DossierHandler) GetDossier(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	p := middleware.PrincipalFrom(c)

	d, events, err := h.usecase.GetDossier(c.Request.Context(), p, orderID, dossierID)
	if err != nil {
		log.Printf("[dossier][handler] get failed order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		respondDossierError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDossierWithEvents(d, events))
}

// GetEvents returns the audit trail of a dossier in chronological order.
func (h *DossierHandler) GetEvents(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	p := middleware.PrincipalFrom(c)

	events, err := h.usecase.GetEvents(c.Request.Context(), p, orderID, dossierID)
	if err != nil {
		log.Printf("[dossier][handler] events failed order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		respondDossierError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDossierEvents(events))
}

// UpdateDossier applies a partial update. When both a status change and a
// metadata patch are present, the status change is applied first; a rejected
// transition leaves the metadata untouched.
func (h *DossierHandler) UpdateDossier(c *gin.Context) {
	orderID := c.Param("order_id")
	dossierID := c.Param("dossier_id")
	p := middleware.PrincipalFrom(c)

	var req request.UpdateDossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[dossier][handler] update invalid payload order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if req.IsEmpty() {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Nothing to update", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var (
		updated entities.Dossier
		err     error
	)
	if req.HasStatus() {
		updated, err = h.usecase.UpdateStatus(c.Request.Context(), p, orderID, dossierID, entities.DossierStatus(req.Status))
		if err != nil {
			log.Printf("[dossier][handler] status update failed order_id=%s dossier_id=%s status=%s err=%v", orderID, dossierID, req.Status, err)
			respondDossierError(c, err)
			return
		}
	}
	if req.HasMetadata() {
		updated, err = h.usecase.UpdateMetadata(c.Request.Context(), p, orderID, dossierID, req.Metadata)
		if err != nil {
			log.Printf("[dossier][handler] metadata update failed order_id=%s dossier_id=%s err=%v", orderID, dossierID, err)
			respondDossierError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, response.FromDossier(updated))
}

// respondDossierError translates lifecycle errors to HTTP. Transition
// rejections get a dedicated body carrying the allowed next statuses.
func respondDossierError(c *gin.Context, err error) {
	var te *entities.TransitionError
	if errors.As(err, &te) {
		c.JSON(http.StatusBadRequest, response.FromTransitionError(te))
		return
	}
	appErr := mapDossierError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDossierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidDossierID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidMetadata),
		errors.Is(err, entities.ErrMetadataTypeMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You may not access this order", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDossierNotFound):
		return pkg.NewDomainErrorSimple("DOSSIER_NOT_FOUND", "Dossier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "The dossier was modified concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
