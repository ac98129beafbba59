package repository

import (
	"context"
	"encoding/json"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDossierEventsTableName = "dossier_events"

type dossierEventItem struct {
	DossierID string `dynamodbav:"dossier_id"`
	EventID   string `dynamodbav:"event_id"`
	EventType string `dynamodbav:"event_type"`
	Timestamp string `dynamodbav:"timestamp"`
	Source    string `dynamodbav:"source"`
	Data      string `dynamodbav:"data,omitempty"`
}

// DossierEventDynamoRepository is the append-only audit trail store.
//
// Table requirements:
//   - PK: dossier_id (string), SK: event_id (string)
//
// The event id is timestamp-prefixed, so querying with ascending key order
// returns chronological order without a separate index. Items are only ever
// put, never updated or deleted.

type DossierEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDossierEventRepository = (*DossierEventDynamoRepository)(nil)

func NewDossierEventDynamoRepository(ddb *dynamodb.Client) *DossierEventDynamoRepository {
	return &DossierEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOSSIER_EVENTS_TABLE", defaultDossierEventsTableName),
	}
}

func (r *DossierEventDynamoRepository) Append(ctx context.Context, event entities.DossierEvent) (entities.DossierEvent, error) {
	it, err := toDossierEventItem(event)
	if err != nil {
		return entities.DossierEvent{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DossierEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#event_id)"),
		ExpressionAttributeNames: map[string]string{
			"#event_id": "event_id",
		},
	})
	if err != nil {
		return entities.DossierEvent{}, err
	}
	return event, nil
}

func (r *DossierEventDynamoRepository) ListByDossierID(ctx context.Context, dossierID string) ([]entities.DossierEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("dossier_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: dossierID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DossierEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it dossierEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		event, err := fromDossierEventItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, event)
	}
	return items, nil
}

func toDossierEventItem(e entities.DossierEvent) (dossierEventItem, error) {
	data := ""
	if len(e.Data) > 0 {
		raw, err := json.Marshal(e.Data)
		if err != nil {
			return dossierEventItem{}, err
		}
		data = string(raw)
	}
	return dossierEventItem{
		DossierID: e.DossierID,
		EventID:   e.EventID,
		EventType: string(e.EventType),
		Timestamp: formatTimestamp(e.Timestamp),
		Source:    string(e.Source),
		Data:      data,
	}, nil
}

func fromDossierEventItem(it dossierEventItem) (entities.DossierEvent, error) {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	data := map[string]interface{}{}
	if it.Data != "" {
		if err := json.Unmarshal([]byte(it.Data), &data); err != nil {
			return entities.DossierEvent{}, err
		}
	}
	return entities.DossierEvent{
		DossierID: it.DossierID,
		EventID:   it.EventID,
		EventType: entities.EventType(it.EventType),
		Timestamp: ts,
		Source:    entities.EventSource(it.Source),
		Data:      data,
	}, nil
}
