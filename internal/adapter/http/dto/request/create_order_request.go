package request

import "eolia_backend/internal/domain/entities"

type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
	PowerKwc  float64 `json:"powerKwc"`
	Category  string  `json:"category"`
}

type ShippingAddressRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	PostalCode   string `json:"postalCode" binding:"required"`
	City         string `json:"city" binding:"required"`
	Country      string `json:"country"`
}

type InstallationDetailsRequest struct {
	InstallationType string  `json:"installationType"`
	MeterPower       float64 `json:"meterPower"`
	TGBTDistance     string  `json:"tgbtDistance"`
	PostalCode       string  `json:"postalCode"`
}

// CreateOrderRequest is the checkout payload. The payment intent referenced
// by paymentIntentId must already exist at the provider.
type CreateOrderRequest struct {
	Type                string                      `json:"type" binding:"required"`
	Items               []OrderItemRequest          `json:"items" binding:"required"`
	ShippingAddress     ShippingAddressRequest      `json:"shippingAddress" binding:"required"`
	InstallationDetails *InstallationDetailsRequest `json:"installationDetails"`
	PaymentIntentID     string                      `json:"paymentIntentId" binding:"required"`
	AffiliateCode       string                      `json:"affiliateCode"`
	TotalAmount         float64                     `json:"totalAmount"`
}

func (r CreateOrderRequest) ToItems() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			PowerKwc:  it.PowerKwc,
			Category:  entities.ProductCategory(it.Category),
		})
	}
	return items
}

func (r CreateOrderRequest) ToShippingAddress() entities.ShippingAddress {
	return entities.ShippingAddress{
		FirstName:    r.ShippingAddress.FirstName,
		LastName:     r.ShippingAddress.LastName,
		Email:        r.ShippingAddress.Email,
		Phone:        r.ShippingAddress.Phone,
		AddressLine1: r.ShippingAddress.AddressLine1,
		AddressLine2: r.ShippingAddress.AddressLine2,
		PostalCode:   r.ShippingAddress.PostalCode,
		City:         r.ShippingAddress.City,
		Country:      r.ShippingAddress.Country,
	}
}

func (r CreateOrderRequest) ToInstallationDetails() *entities.InstallationDetails {
	if r.InstallationDetails == nil {
		return nil
	}
	return &entities.InstallationDetails{
		InstallationType: r.InstallationDetails.InstallationType,
		MeterPower:       r.InstallationDetails.MeterPower,
		TGBTDistance:     r.InstallationDetails.TGBTDistance,
		PostalCode:       r.InstallationDetails.PostalCode,
	}
}
