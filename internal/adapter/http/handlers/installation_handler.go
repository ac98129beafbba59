package handlers

import (
	"errors"
	"log"
	"net/http"

	request "eolia_backend/internal/adapter/http/dto/request"
	response "eolia_backend/internal/adapter/http/dto/response"
	"eolia_backend/internal/adapter/http/middleware"
	"eolia_backend/internal/usecase"
	"eolia_backend/pkg"

	"github.com/gin-gonic/gin"
)

// InstallationHandler handles the installation dossier's milestone routes.

type InstallationHandler struct {
	usecase usecase.IInstallationUseCase
}

func NewInstallationHandler(uc usecase.IInstallationUseCase) *InstallationHandler {
	return &InstallationHandler{usecase: uc}
}

// SubmitTechnicalVisit accepts the client's VT form and advances the
// installation dossier to vt_completed.
func (h *InstallationHandler) SubmitTechnicalVisit(c *gin.Context) {
	orderID := c.Param("order_id")
	p := middleware.PrincipalFrom(c)

	var req request.SubmitVTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[installation][handler] vt invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.SubmitTechnicalVisit(c.Request.Context(), p, orderID, req.ToFormData())
	if err != nil {
		log.Printf("[installation][handler] vt submit failed order_id=%s err=%v", orderID, err)
		respondInstallationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDossier(d))
}

// SendToEngineering forwards a completed technical visit to the engineering
// office and advances the dossier to awaiting_be.
func (h *InstallationHandler) SendToEngineering(c *gin.Context) {
	orderID := c.Param("order_id")
	p := middleware.PrincipalFrom(c)

	d, err := h.usecase.SendToEngineering(c.Request.Context(), p, orderID)
	if err != nil {
		log.Printf("[installation][handler] send-to-be failed order_id=%s err=%v", orderID, err)
		respondInstallationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDossier(d))
}

func respondInstallationError(c *gin.Context, err error) {
	var ve *usecase.VTValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Technical visit form is invalid",
			Errors:  ve.Errors,
		})
		return
	}

	var mp *usecase.MissingPhotosError
	if errors.As(err, &mp) {
		appErr := pkg.NewDomainErrorSimple("PHOTOS_NOT_FOUND", mp.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	appErr := mapInstallationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapInstallationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVTAlreadySubmitted):
		return pkg.NewDomainErrorSimple("VT_ALREADY_SUBMITTED", "Technical visit already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrVTNotCompleted):
		return pkg.NewDomainErrorSimple("VT_NOT_COMPLETED", "Technical visit must be completed first", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallationDossierNotFound):
		return pkg.NewDomainErrorSimple("DOSSIER_NOT_FOUND", "Installation dossier not found", http.StatusNotFound)
	default:
		return mapDossierError(err)
	}
}
