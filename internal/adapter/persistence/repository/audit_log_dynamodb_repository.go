package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultAuditTableName = "audit_log"

type auditLogItem struct {
	ID        string `dynamodbav:"id"`
	Timestamp string `dynamodbav:"timestamp"`
	Level     string `dynamodbav:"level"`
	Category  string `dynamodbav:"category"`
	Actor     string `dynamodbav:"actor,omitempty"`
	Action    string `dynamodbav:"action"`
	Details   string `dynamodbav:"details,omitempty"`
	Outcome   string `dynamodbav:"outcome"`
}

// AuditLogDynamoRepository persists audit entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Entries are append-only; there is no update or delete path.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

// Append stores e with a timestamp assigned here. Idempotent on ID: when the
// conditional put loses to an existing entry, the stored one is returned
// unchanged.
func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Timestamp = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toAuditLogItem(e))
	if err != nil {
		return entities.AuditLogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.getByID(ctx, e.ID)
		}
		return entities.AuditLogEntry{}, err
	}
	return e, nil
}

// Query scans and filters in memory, newest first. The audit table stays
// small enough in this deployment that a filtered scan beats maintaining
// extra indexes.
func (r *AuditLogDynamoRepository) Query(ctx context.Context, f entities.AuditLogFilter) ([]entities.AuditLogEntry, error) {
	var (
		out      []entities.AuditLogEntry
		startKey map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it auditLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entry := fromAuditLogItem(it)
			if f.Matches(entry) {
				out = append(out, entry)
			}
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *AuditLogDynamoRepository) getByID(ctx context.Context, id string) (entities.AuditLogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AuditLogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.AuditLogEntry{}, nil
	}
	var it auditLogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AuditLogEntry{}, err
	}
	return fromAuditLogItem(it), nil
}

func toAuditLogItem(e entities.AuditLogEntry) auditLogItem {
	return auditLogItem{
		ID:        e.ID,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
		Level:     string(e.Level),
		Category:  e.Category,
		Actor:     e.Actor,
		Action:    e.Action,
		Details:   e.Details,
		Outcome:   string(e.Outcome),
	}
}

func fromAuditLogItem(it auditLogItem) entities.AuditLogEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.AuditLogEntry{
		ID:        it.ID,
		Timestamp: ts,
		Level:     entities.AuditLogLevel(it.Level),
		Category:  it.Category,
		Actor:     it.Actor,
		Action:    it.Action,
		Details:   it.Details,
		Outcome:   entities.AuditOutcome(it.Outcome),
	}
}
