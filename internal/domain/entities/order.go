package entities

import "time"

// ProductCategory tags a catalog product; categories drive which dossiers an
// order needs.

type ProductCategory string

const (
	CategoryTurbine        ProductCategory = "turbine"
	CategoryInverter       ProductCategory = "inverter"
	CategoryAccessory      ProductCategory = "accessory"
	CategoryInstallation   ProductCategory = "installation"
	CategoryAdministrative ProductCategory = "administrative"
)

// physicalCategories are the categories shipped as physical goods; any of
// them triggers logistics tracking.
var physicalCategories = []ProductCategory{CategoryTurbine, CategoryInverter, CategoryAccessory}

// IsPhysicalCategory reports whether a category corresponds to physical
// goods that require a shipping dossier.
func IsPhysicalCategory(c ProductCategory) bool {
	for _, pc := range physicalCategories {
		if pc == c {
			return true
		}
	}
	return false
}

// OrderType distinguishes a regular purchase from an anemometer loan.

type OrderType string

const (
	OrderTypeStandard       OrderType = "standard"
	OrderTypeAnemometerLoan OrderType = "anemometer_loan"
)

// MaxTotalPowerKwc is the regulatory cap on an order's combined turbine
// power; larger installations go through sales instead of checkout.
const MaxTotalPowerKwc = 36.0

// OrderItem is one purchased line item.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	PowerKwc  float64         `json:"powerKwc,omitempty"`
	Category  ProductCategory `json:"category,omitempty"`
}

// ShippingAddress is the delivery contact captured at checkout.
type ShippingAddress struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

// InstallationDetails is the electrical context collected for installation
// package orders.
type InstallationDetails struct {
	InstallationType string  `json:"installationType"`
	MeterPower       float64 `json:"meterPower"`
	TGBTDistance     string  `json:"tgbtDistance"`
	PostalCode       string  `json:"postalCode"`
}

// Order is the committed purchase the dossiers hang off of.
//
// Storage model (DynamoDB):
//   - PK: orderId
type Order struct {
	OrderID             string               `json:"orderId"`
	UserID              string               `json:"userId"`
	Type                OrderType            `json:"type"`
	Status              string               `json:"status"`
	TotalAmount         float64              `json:"totalAmount"`
	Items               []OrderItem          `json:"items,omitempty"`
	ShippingAddress     ShippingAddress      `json:"shippingAddress"`
	InstallationDetails *InstallationDetails `json:"installationDetails,omitempty"`
	PaymentIntentID     string               `json:"paymentIntentId"`
	AffiliateCode       string               `json:"affiliateCode,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// TotalPowerKwc sums the power of every line item, weighted by quantity.
func (o Order) TotalPowerKwc() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.PowerKwc * float64(item.Quantity)
	}
	return total
}
