package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDossiersTableName = "order_dossiers"

type dossierItem struct {
	OrderID   string `dynamodbav:"order_id"`
	DossierID string `dynamodbav:"dossier_id"`
	Type      string `dynamodbav:"type"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Metadata  string `dynamodbav:"metadata,omitempty"`
}

// DossierDynamoRepository persists Dossier entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string), SK: dossier_id (string)
//
// Metadata travels as a JSON document string; the concrete shape depends on
// the dossier type and is restored through entities.DecodeMetadata. Status
// and metadata writes are conditional on the (status, updated_at) pair the
// caller last read, so a lost read-modify-write surfaces as
// interfaces.ErrConflict instead of silently clobbering.

type DossierDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDossierRepository = (*DossierDynamoRepository)(nil)

func NewDossierDynamoRepository(ddb *dynamodb.Client) *DossierDynamoRepository {
	return &DossierDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_DOSSIERS_TABLE", defaultDossiersTableName),
	}
}

func (r *DossierDynamoRepository) CreateBatch(ctx context.Context, dossiers []entities.Dossier) error {
	for _, d := range dossiers {
		it, err := toDossierItem(d)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#dossier_id)"),
			ExpressionAttributeNames: map[string]string{
				"#dossier_id": "dossier_id",
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *DossierDynamoRepository) Get(ctx context.Context, orderID, dossierID string) (entities.Dossier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id":   &types.AttributeValueMemberS{Value: orderID},
			"dossier_id": &types.AttributeValueMemberS{Value: dossierID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Dossier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Dossier{}, nil
	}

	var it dossierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Dossier{}, err
	}
	return fromDossierItem(it)
}

func (r *DossierDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Dossier, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Dossier, 0, len(out.Items))
	for _, raw := range out.Items {
		var it dossierItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		d, err := fromDossierItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

func (r *DossierDynamoRepository) UpdateStatus(ctx context.Context, orderID, dossierID string, newStatus, expectedStatus entities.DossierStatus, expectedUpdatedAt, now time.Time) (entities.Dossier, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id":   &types.AttributeValueMemberS{Value: orderID},
			"dossier_id": &types.AttributeValueMemberS{Value: dossierID},
		},
		UpdateExpression:    aws.String("SET #status = :new_status, #updated_at = :now"),
		ConditionExpression: aws.String("#status = :expected_status AND #updated_at = :expected_updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new_status":          &types.AttributeValueMemberS{Value: string(newStatus)},
			":now":                 &types.AttributeValueMemberS{Value: formatTimestamp(now)},
			":expected_status":     &types.AttributeValueMemberS{Value: string(expectedStatus)},
			":expected_updated_at": &types.AttributeValueMemberS{Value: formatTimestamp(expectedUpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Dossier{}, mapConditionalError(err)
	}

	var it dossierItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Dossier{}, err
	}
	return fromDossierItem(it)
}

func (r *DossierDynamoRepository) UpdateMetadata(ctx context.Context, orderID, dossierID string, metadata entities.DossierMetadata, expectedUpdatedAt, now time.Time) (entities.Dossier, error) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return entities.Dossier{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id":   &types.AttributeValueMemberS{Value: orderID},
			"dossier_id": &types.AttributeValueMemberS{Value: dossierID},
		},
		UpdateExpression:    aws.String("SET #metadata = :metadata, #updated_at = :now"),
		ConditionExpression: aws.String("#updated_at = :expected_updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#metadata":   "metadata",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":metadata":            &types.AttributeValueMemberS{Value: string(raw)},
			":now":                 &types.AttributeValueMemberS{Value: formatTimestamp(now)},
			":expected_updated_at": &types.AttributeValueMemberS{Value: formatTimestamp(expectedUpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Dossier{}, mapConditionalError(err)
	}

	var it dossierItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Dossier{}, err
	}
	return fromDossierItem(it)
}

func mapConditionalError(err error) error {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return interfaces.ErrConflict
	}
	return err
}

func toDossierItem(d entities.Dossier) (dossierItem, error) {
	metadata := ""
	if d.Metadata != nil {
		raw, err := json.Marshal(d.Metadata)
		if err != nil {
			return dossierItem{}, err
		}
		metadata = string(raw)
	}
	return dossierItem{
		OrderID:   d.OrderID,
		DossierID: d.DossierID,
		Type:      string(d.Type),
		Status:    string(d.Status),
		CreatedAt: formatTimestamp(d.CreatedAt),
		UpdatedAt: formatTimestamp(d.UpdatedAt),
		Metadata:  metadata,
	}, nil
}

func fromDossierItem(it dossierItem) (entities.Dossier, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	metadata, err := entities.DecodeMetadata(entities.DossierType(it.Type), []byte(it.Metadata))
	if err != nil {
		return entities.Dossier{}, err
	}
	return entities.Dossier{
		OrderID:   it.OrderID,
		DossierID: it.DossierID,
		Type:      entities.DossierType(it.Type),
		Status:    entities.DossierStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Metadata:  metadata,
	}, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
