package repository

import (
	"context"

	"auxilio_propg/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigTableName = "notification_config"

	configKeyRecipients  = "recipients#"
	configKeyTemplate    = "template#"
	configKeyFieldLabels = "field_labels"
)

type configItem struct {
	DocKey     string            `dynamodbav:"doc_key"`
	Recipients []string          `dynamodbav:"recipients,omitempty"`
	Body       string            `dynamodbav:"body,omitempty"`
	Labels     map[string]string `dynamodbav:"labels,omitempty"`
}

// NotificationConfigDynamoRepository persists admin-editable configuration
// documents (recipient lists, template overrides, field labels) as key/value
// documents in DynamoDB.
//
// Table requirements:
//   - PK: doc_key (string)
//
// Documents are small and re-read on every lookup, which is what makes them
// hot-editable without a restart.

type NotificationConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationConfigRepository = (*NotificationConfigDynamoRepository)(nil)

func NewNotificationConfigDynamoRepository(ddb *dynamodb.Client) *NotificationConfigDynamoRepository {
	return &NotificationConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *NotificationConfigDynamoRepository) GetRecipients(ctx context.Context, eventKey string) ([]string, error) {
	it, err := r.get(ctx, configKeyRecipients+eventKey)
	if err != nil {
		return nil, err
	}
	return it.Recipients, nil
}

func (r *NotificationConfigDynamoRepository) SetRecipients(ctx context.Context, eventKey string, recipients []string) error {
	return r.put(ctx, configItem{DocKey: configKeyRecipients + eventKey, Recipients: recipients})
}

func (r *NotificationConfigDynamoRepository) GetTemplate(ctx context.Context, name string) (string, error) {
	it, err := r.get(ctx, configKeyTemplate+name)
	if err != nil {
		return "", err
	}
	return it.Body, nil
}

func (r *NotificationConfigDynamoRepository) SetTemplate(ctx context.Context, name, body string) error {
	return r.put(ctx, configItem{DocKey: configKeyTemplate + name, Body: body})
}

func (r *NotificationConfigDynamoRepository) GetFieldLabels(ctx context.Context) (map[string]string, error) {
	it, err := r.get(ctx, configKeyFieldLabels)
	if err != nil {
		return nil, err
	}
	return it.Labels, nil
}

func (r *NotificationConfigDynamoRepository) SetFieldLabels(ctx context.Context, labels map[string]string) error {
	return r.put(ctx, configItem{DocKey: configKeyFieldLabels, Labels: labels})
}

func (r *NotificationConfigDynamoRepository) get(ctx context.Context, docKey string) (configItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"doc_key": &types.AttributeValueMemberS{Value: docKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return configItem{}, err
	}
	if len(out.Item) == 0 {
		return configItem{}, nil
	}
	var it configItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return configItem{}, err
	}
	return it, nil
}

func (r *NotificationConfigDynamoRepository) put(ctx context.Context, it configItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
