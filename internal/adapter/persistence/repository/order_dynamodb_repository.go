package repository

import (
	"context"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItemRecord struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Quantity  int     `dynamodbav:"quantity"`
	Price     float64 `dynamodbav:"price"`
	PowerKwc  float64 `dynamodbav:"power_kwc,omitempty"`
	Category  string  `dynamodbav:"category,omitempty"`
}

type shippingAddressRecord struct {
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone,omitempty"`
	AddressLine1 string `dynamodbav:"address_line1"`
	AddressLine2 string `dynamodbav:"address_line2,omitempty"`
	PostalCode   string `dynamodbav:"postal_code"`
	City         string `dynamodbav:"city"`
	Country      string `dynamodbav:"country,omitempty"`
}

type installationDetailsRecord struct {
	InstallationType string  `dynamodbav:"installation_type"`
	MeterPower       float64 `dynamodbav:"meter_power"`
	TGBTDistance     string  `dynamodbav:"tgbt_distance"`
	PostalCode       string  `dynamodbav:"postal_code"`
}

type orderItem struct {
	OrderID             string                     `dynamodbav:"order_id"`
	UserID              string                     `dynamodbav:"user_id"`
	Type                string                     `dynamodbav:"type"`
	Status              string                     `dynamodbav:"status"`
	TotalAmount         float64                    `dynamodbav:"total_amount"`
	Items               []orderItemRecord          `dynamodbav:"items,omitempty"`
	ShippingAddress     shippingAddressRecord      `dynamodbav:"shipping_address"`
	InstallationDetails *installationDetailsRecord `dynamodbav:"installation_details,omitempty"`
	PaymentIntentID     string                     `dynamodbav:"payment_intent_id"`
	AffiliateCode       string                     `dynamodbav:"affiliate_code,omitempty"`
	CreatedAt           string                     `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderItemRecord, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderItemRecord{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			Price:     li.Price,
			PowerKwc:  li.PowerKwc,
			Category:  string(li.Category),
		})
	}

	var details *installationDetailsRecord
	if o.InstallationDetails != nil {
		details = &installationDetailsRecord{
			InstallationType: o.InstallationDetails.InstallationType,
			MeterPower:       o.InstallationDetails.MeterPower,
			TGBTDistance:     o.InstallationDetails.TGBTDistance,
			PostalCode:       o.InstallationDetails.PostalCode,
		}
	}

	return orderItem{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		Type:        string(o.Type),
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Items:       items,
		ShippingAddress: shippingAddressRecord{
			FirstName:    o.ShippingAddress.FirstName,
			LastName:     o.ShippingAddress.LastName,
			Email:        o.ShippingAddress.Email,
			Phone:        o.ShippingAddress.Phone,
			AddressLine1: o.ShippingAddress.AddressLine1,
			AddressLine2: o.ShippingAddress.AddressLine2,
			PostalCode:   o.ShippingAddress.PostalCode,
			City:         o.ShippingAddress.City,
			Country:      o.ShippingAddress.Country,
		},
		InstallationDetails: details,
		PaymentIntentID:     o.PaymentIntentID,
		AffiliateCode:       o.AffiliateCode,
		CreatedAt:           formatTimestamp(o.CreatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			Price:     li.Price,
			PowerKwc:  li.PowerKwc,
			Category:  entities.ProductCategory(li.Category),
		})
	}

	var details *entities.InstallationDetails
	if it.InstallationDetails != nil {
		details = &entities.InstallationDetails{
			InstallationType: it.InstallationDetails.InstallationType,
			MeterPower:       it.InstallationDetails.MeterPower,
			TGBTDistance:     it.InstallationDetails.TGBTDistance,
			PostalCode:       it.InstallationDetails.PostalCode,
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Order{
		OrderID:     it.OrderID,
		UserID:      it.UserID,
		Type:        entities.OrderType(it.Type),
		Status:      it.Status,
		TotalAmount: it.TotalAmount,
		Items:       items,
		ShippingAddress: entities.ShippingAddress{
			FirstName:    it.ShippingAddress.FirstName,
			LastName:     it.ShippingAddress.LastName,
			Email:        it.ShippingAddress.Email,
			Phone:        it.ShippingAddress.Phone,
			AddressLine1: it.ShippingAddress.AddressLine1,
			AddressLine2: it.ShippingAddress.AddressLine2,
			PostalCode:   it.ShippingAddress.PostalCode,
			City:         it.ShippingAddress.City,
			Country:      it.ShippingAddress.Country,
		},
		InstallationDetails: details,
		PaymentIntentID:     it.PaymentIntentID,
		AffiliateCode:       it.AffiliateCode,
		CreatedAt:           createdAt,
	}
}
