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

// OrderHandler handles checkout and order lookup.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder commits a paid checkout. Works for guests too: with no
// authenticated subject the order is keyed by the contact email.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), p, usecase.CreateOrderInput{
		Type:                entities.OrderType(req.Type),
		Items:               req.ToItems(),
		ShippingAddress:     req.ToShippingAddress(),
		InstallationDetails: req.ToInstallationDetails(),
		PaymentIntentID:     req.PaymentIntentID,
		AffiliateCode:       req.AffiliateCode,
		TotalAmount:         req.TotalAmount,
	})
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s user_id=%s", order.OrderID, order.UserID)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder returns one order for its owner or an admin.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	p := middleware.PrincipalFrom(c)

	order, err := h.usecase.GetOrder(c.Request.Context(), p, orderID)
	if err != nil {
		log.Printf("[order][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingItems),
		errors.Is(err, usecase.ErrMissingPaymentIntent),
		errors.Is(err, usecase.ErrMissingShippingAddress),
		errors.Is(err, usecase.ErrInvalidOrderType),
		errors.Is(err, usecase.ErrMissingIdentity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPowerLimitExceeded):
		return pkg.NewDomainErrorSimple("POWER_LIMIT_EXCEEDED", "Orders above 36 kWc must go through sales", http.StatusBadRequest)
	default:
		return mapDossierError(err)
	}
}
