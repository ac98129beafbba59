package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingItems           = errors.New("order must contain at least one item")
	ErrMissingPaymentIntent   = errors.New("paymentIntentId is required")
	ErrMissingShippingAddress = errors.New("shipping address is incomplete")
	ErrInvalidOrderType       = errors.New("invalid order type")
	ErrMissingIdentity        = errors.New("a subject or a contact email is required")
	ErrPowerLimitExceeded     = fmt.Errorf("total power exceeds %.0f kWc", entities.MaxTotalPowerKwc)
)

// CreateOrderInput is the checkout payload after transport decoding.
type CreateOrderInput struct {
	Type                entities.OrderType
	Items               []entities.OrderItem
	ShippingAddress     entities.ShippingAddress
	InstallationDetails *entities.InstallationDetails
	PaymentIntentID     string
	AffiliateCode       string
	TotalAmount         float64
}

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, p entities.Principal, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	dossiers interfaces.IDossierRepository
	events   interfaces.IDossierEventRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, dossiers interfaces.IDossierRepository, events interfaces.IDossierEventRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, dossiers: dossiers, events: events}
}

// CreateOrder persists a paid checkout and derives its fulfillment dossiers.
//
// Dossier creation is best effort: the order is already paid by the time we
// get here, so a tracking-record failure is logged for operator replay
// instead of failing the checkout.
func (u *OrderUseCase) CreateOrder(ctx context.Context, p entities.Principal, in CreateOrderInput) (entities.Order, error) {
	if err := validateOrderInput(in); err != nil {
		return entities.Order{}, err
	}

	userID := p.SubjectID
	if userID == "" {
		email := strings.TrimSpace(in.ShippingAddress.Email)
		if email == "" {
			return entities.Order{}, ErrMissingIdentity
		}
		userID = fmt.Sprintf("guest_%s", strings.ToLower(email))
	}

	now := time.Now().UTC()
	order := entities.Order{
		OrderID:             uuid.NewString(),
		UserID:              userID,
		Type:                in.Type,
		Status:              "pending",
		TotalAmount:         in.TotalAmount,
		Items:               in.Items,
		ShippingAddress:     in.ShippingAddress,
		InstallationDetails: in.InstallationDetails,
		PaymentIntentID:     strings.TrimSpace(in.PaymentIntentID),
		AffiliateCode:       strings.TrimSpace(in.AffiliateCode),
		CreatedAt:           now,
	}

	if order.TotalPowerKwc() > entities.MaxTotalPowerKwc {
		return entities.Order{}, ErrPowerLimitExceeded
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	u.createDossiers(ctx, created)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.OrderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !p.CanAccessOrder(order.UserID) {
		return entities.Order{}, ErrForbidden
	}
	return order, nil
}

func (u *OrderUseCase) createDossiers(ctx context.Context, order entities.Order) {
	seeds := entities.DeriveDossiers(order.Items)
	if len(seeds) == 0 {
		return
	}

	now := time.Now().UTC()
	dossiers := make([]entities.Dossier, 0, len(seeds))
	for _, seed := range seeds {
		d, err := entities.NewDossier(order.OrderID, seed.Type, now)
		if err != nil {
			log.Printf("[order][usecase] dossier creation failed order_id=%s type=%s err=%v", order.OrderID, seed.Type, err)
			continue
		}
		dossiers = append(dossiers, d)
	}
	if len(dossiers) == 0 {
		return
	}

	if err := u.dossiers.CreateBatch(ctx, dossiers); err != nil {
		log.Printf("[order][usecase] dossier creation failed order_id=%s err=%v", order.OrderID, err)
		return
	}

	for _, d := range dossiers {
		event := entities.NewDossierEvent(d.DossierID, entities.EventStatusChanged, entities.EventSourceSystem, map[string]interface{}{
			"newStatus": string(d.Status),
			"message":   "Dossier created",
		})
		if _, err := u.events.Append(ctx, event); err != nil {
			log.Printf("[order][usecase] initial event append failed dossier_id=%s err=%v", d.DossierID, err)
		}
	}
}

func validateOrderInput(in CreateOrderInput) error {
	switch in.Type {
	case entities.OrderTypeStandard, entities.OrderTypeAnemometerLoan:
	default:
		return ErrInvalidOrderType
	}
	if len(in.Items) == 0 {
		return ErrMissingItems
	}
	if strings.TrimSpace(in.PaymentIntentID) == "" {
		return ErrMissingPaymentIntent
	}
	addr := in.ShippingAddress
	if strings.TrimSpace(addr.FirstName) == "" ||
		strings.TrimSpace(addr.LastName) == "" ||
		strings.TrimSpace(addr.AddressLine1) == "" ||
		strings.TrimSpace(addr.PostalCode) == "" ||
		strings.TrimSpace(addr.City) == "" {
		return ErrMissingShippingAddress
	}
	return nil
}
