package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "aid_requests"
	requestsCPFIndex         = "cpf-index"
)

type aidRequestItem struct {
	ID             string `dynamodbav:"id"`
	RequesterCPF   string `dynamodbav:"requester_cpf"`
	RequesterName  string `dynamodbav:"requester_name"`
	RequesterEmail string `dynamodbav:"requester_email"`
	Course         string `dynamodbav:"course,omitempty"`
	Advisor        string `dynamodbav:"advisor,omitempty"`
	Motive         string `dynamodbav:"motive,omitempty"`
	Status         string `dynamodbav:"status"`
	RequestedValue string `dynamodbav:"requested_value,omitempty"`
	ApprovedValue  string `dynamodbav:"approved_value,omitempty"`
	Observations   string `dynamodbav:"observations,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	LastUpdatedAt  string `dynamodbav:"last_updated_at"`
	LastModifiedBy string `dynamodbav:"last_modified_by,omitempty"`
}

// updatableFields maps the engine's field names to item attributes. Only
// these attributes may change after submission; the descriptive fields are
// immutable.
var updatableFields = map[string]string{
	entities.FieldStatus:         "status",
	entities.FieldApprovedValue:  "approved_value",
	entities.FieldObservations:   "observations",
	entities.FieldLastUpdatedAt:  "last_updated_at",
	entities.FieldLastModifiedBy: "last_modified_by",
}

// AidRequestDynamoRepository persists AidRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cpf-index (PK: requester_cpf)

type AidRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAidRequestRepository = (*AidRequestDynamoRepository)(nil)

func NewAidRequestDynamoRepository(ddb *dynamodb.Client) *AidRequestDynamoRepository {
	return &AidRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *AidRequestDynamoRepository) Create(ctx context.Context, e entities.AidRequest) (entities.AidRequest, error) {
	it := toAidRequestItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AidRequest{}, err
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
		return entities.AidRequest{}, err
	}
	return e, nil
}

func (r *AidRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.AidRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AidRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.AidRequest{}, nil
	}

	var it aidRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AidRequest{}, err
	}
	return fromAidRequestItem(it), nil
}

// GetByCreatedAt resolves a record by its creation timestamp. Compatibility
// shim for rows migrated without a stable id; duplicates are surfaced as
// ErrAmbiguousCreatedAt, never silently deduplicated.
func (r *AidRequestDynamoRepository) GetByCreatedAt(ctx context.Context, createdAt time.Time) (entities.AidRequest, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return entities.AidRequest{}, err
	}
	return matchByCreatedAt(all, createdAt)
}

func (r *AidRequestDynamoRepository) LoadAll(ctx context.Context) ([]entities.AidRequest, error) {
	var (
		out      []entities.AidRequest
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
			var it aidRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAidRequestItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *AidRequestDynamoRepository) ListByCPF(ctx context.Context, cpf string) ([]entities.AidRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsCPFIndex),
		KeyConditionExpression: aws.String("requester_cpf = :cpf"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cpf": &types.AttributeValueMemberS{Value: cpf},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AidRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it aidRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAidRequestItem(it))
	}
	return items, nil
}

func (r *AidRequestDynamoRepository) UpdateFields(ctx context.Context, id string, fields map[string]string) (entities.AidRequest, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	expr := "SET"
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}
	i := 0
	for field, value := range fields {
		attr, ok := updatableFields[field]
		if !ok {
			return entities.AidRequest{}, fmt.Errorf("field %q is not updatable", field)
		}
		placeholder := fmt.Sprintf(":v%d", i)
		name := fmt.Sprintf("#f%d", i)
		if i > 0 {
			expr += ","
		}
		expr += fmt.Sprintf(" %s = %s", name, placeholder)
		values[placeholder] = &types.AttributeValueMemberS{Value: value}
		names[name] = attr
		i++
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AidRequest{}, nil
		}
		return entities.AidRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AidRequest{}, nil
	}
	var it aidRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AidRequest{}, err
	}
	return fromAidRequestItem(it), nil
}

func matchByCreatedAt(all []entities.AidRequest, createdAt time.Time) (entities.AidRequest, error) {
	var found entities.AidRequest
	matches := 0
	for _, r := range all {
		if r.CreatedAt.Equal(createdAt) {
			found = r
			matches++
		}
	}
	if matches > 1 {
		return entities.AidRequest{}, interfaces.ErrAmbiguousCreatedAt
	}
	if matches == 0 {
		return entities.AidRequest{}, nil
	}
	return found, nil
}

func toAidRequestItem(e entities.AidRequest) aidRequestItem {
	return aidRequestItem{
		ID:             e.ID,
		RequesterCPF:   e.RequesterCPF,
		RequesterName:  e.RequesterName,
		RequesterEmail: e.RequesterEmail,
		Course:         e.Course,
		Advisor:        e.Advisor,
		Motive:         e.Motive,
		Status:         string(e.Status),
		RequestedValue: e.RequestedValue,
		ApprovedValue:  e.ApprovedValue,
		Observations:   e.Observations,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		LastUpdatedAt:  e.LastUpdatedAt.UTC().Format(time.RFC3339Nano),
		LastModifiedBy: e.LastModifiedBy,
	}
}

func fromAidRequestItem(it aidRequestItem) entities.AidRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.LastUpdatedAt)
	return entities.AidRequest{
		ID:             it.ID,
		RequesterCPF:   it.RequesterCPF,
		RequesterName:  it.RequesterName,
		RequesterEmail: it.RequesterEmail,
		Course:         it.Course,
		Advisor:        it.Advisor,
		Motive:         it.Motive,
		Status:         entities.RequestStatus(it.Status),
		RequestedValue: it.RequestedValue,
		ApprovedValue:  it.ApprovedValue,
		Observations:   it.Observations,
		CreatedAt:      createdAt,
		LastUpdatedAt:  updatedAt,
		LastModifiedBy: it.LastModifiedBy,
	}
}
