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

const (
	defaultDossierDocumentsTableName = "dossier_documents"
	documentsDossierIDIndex          = "dossier_id-index"
	documentsOrderIDIndex            = "order_id-index"
)

type dossierDocumentItem struct {
	DocumentID  string `dynamodbav:"document_id"`
	DossierID   string `dynamodbav:"dossier_id"`
	OrderID     string `dynamodbav:"order_id"`
	FileName    string `dynamodbav:"file_name"`
	ContentType string `dynamodbav:"content_type"`
	Size        int64  `dynamodbav:"size"`
	StorageKey  string `dynamodbav:"storage_key"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
	UploadedBy  string `dynamodbav:"uploaded_by,omitempty"`
}

// DossierDocumentDynamoRepository persists document records in DynamoDB.
//
// Table requirements:
//   - PK: document_id (string)
//   - GSI: dossier_id-index (PK: dossier_id)
//   - GSI: order_id-index (PK: order_id)

type DossierDocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDossierDocumentRepository = (*DossierDocumentDynamoRepository)(nil)

func NewDossierDocumentDynamoRepository(ddb *dynamodb.Client) *DossierDocumentDynamoRepository {
	return &DossierDocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOSSIER_DOCUMENTS_TABLE", defaultDossierDocumentsTableName),
	}
}

func (r *DossierDocumentDynamoRepository) Create(ctx context.Context, doc entities.DossierDocument) (entities.DossierDocument, error) {
	it := toDossierDocumentItem(doc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DossierDocument{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#document_id)"),
		ExpressionAttributeNames: map[string]string{
			"#document_id": "document_id",
		},
	})
	if err != nil {
		return entities.DossierDocument{}, err
	}
	return doc, nil
}

func (r *DossierDocumentDynamoRepository) GetByID(ctx context.Context, documentID string) (entities.DossierDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"document_id": &types.AttributeValueMemberS{Value: documentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DossierDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.DossierDocument{}, nil
	}

	var it dossierDocumentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DossierDocument{}, err
	}
	return fromDossierDocumentItem(it), nil
}

func (r *DossierDocumentDynamoRepository) ListByDossierID(ctx context.Context, dossierID string) ([]entities.DossierDocument, error) {
	return r.queryIndex(ctx, documentsDossierIDIndex, "dossier_id", dossierID)
}

func (r *DossierDocumentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.DossierDocument, error) {
	return r.queryIndex(ctx, documentsOrderIDIndex, "order_id", orderID)
}

func (r *DossierDocumentDynamoRepository) Delete(ctx context.Context, documentID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"document_id": &types.AttributeValueMemberS{Value: documentID},
		},
	})
	return err
}

func (r *DossierDocumentDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.DossierDocument, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#key = :val"),
		ExpressionAttributeNames: map[string]string{
			"#key": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":val": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DossierDocument, 0, len(out.Items))
	for _, raw := range out.Items {
		var it dossierDocumentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDossierDocumentItem(it))
	}
	return items, nil
}

func toDossierDocumentItem(d entities.DossierDocument) dossierDocumentItem {
	return dossierDocumentItem{
		DocumentID:  d.DocumentID,
		DossierID:   d.DossierID,
		OrderID:     d.OrderID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		Size:        d.Size,
		StorageKey:  d.StorageKey,
		UploadedAt:  formatTimestamp(d.UploadedAt),
		UploadedBy:  d.UploadedBy,
	}
}

func fromDossierDocumentItem(it dossierDocumentItem) entities.DossierDocument {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.DossierDocument{
		DocumentID:  it.DocumentID,
		DossierID:   it.DossierID,
		OrderID:     it.OrderID,
		FileName:    it.FileName,
		ContentType: it.ContentType,
		Size:        it.Size,
		StorageKey:  it.StorageKey,
		UploadedAt:  uploadedAt,
		UploadedBy:  it.UploadedBy,
	}
}
