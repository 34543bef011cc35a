package dynamodb

import (
	"context"
	"fmt"
	"time"

	"gorgonzola/domain/core/valueobjects"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Attribute names of the single-table layout
const (
	AttrPK         = "pk"
	AttrSK         = "sk"
	AttrEntityType = "entityType"
	AttrEntitySK   = "entitySk"

	// MaxBatchSize is the BatchWriteItem request limit
	MaxBatchSize = 25
)

// DynamoAPI is the subset of the DynamoDB client the table uses. The real
// *dynamodb.Client satisfies it; tests substitute a fake.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// OperationObserver receives timing for every storage call
type OperationObserver interface {
	RecordDBOperation(operation string, duration time.Duration, err error)
}

// Record is one marshalled table item
type Record = map[string]types.AttributeValue

// Table wraps the GorgonZola table and its entity index
type Table struct {
	client     DynamoAPI
	tableName  string
	indexName  string
	logger     *zap.Logger
	maxRetries int
	newBackOff func() backoff.BackOff
	observer   OperationObserver
}

// Option configures a Table
type Option func(*Table)

// WithMaxRetries sets how many attempts a batch chunk gets
func WithMaxRetries(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.maxRetries = n
		}
	}
}

// WithBackOff replaces the retry delay policy
func WithBackOff(fn func() backoff.BackOff) Option {
	return func(t *Table) {
		t.newBackOff = fn
	}
}

// WithObserver reports operation timings to o
func WithObserver(o OperationObserver) Option {
	return func(t *Table) {
		t.observer = o
	}
}

// NewTable creates a table wrapper
func NewTable(client DynamoAPI, tableName, indexName string, logger *zap.Logger, opts ...Option) *Table {
	t := &Table{
		client:     client,
		tableName:  tableName,
		indexName:  indexName,
		logger:     logger,
		maxRetries: 3,
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.Multiplier = 2
	b.MaxInterval = 2 * time.Second
	return b
}

// Name returns the table name
func (t *Table) Name() string {
	return t.tableName
}

// NewRecord marshals entity and stamps the key attributes. Entity records
// (entityType set) also get the entity index attributes, unless sortKey is
// empty: DynamoDB rejects empty index keys, so an unnamed entity stays
// reachable by id but is left out of the index.
func NewRecord(key valueobjects.Key, entityType valueobjects.EntityType, sortKey string, entity interface{}) (Record, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", entity, err)
	}
	av[AttrPK] = &types.AttributeValueMemberS{Value: key.PK}
	av[AttrSK] = &types.AttributeValueMemberS{Value: key.SK}
	if entityType != "" && sortKey != "" {
		av[AttrEntityType] = &types.AttributeValueMemberS{Value: entityType.String()}
		av[AttrEntitySK] = &types.AttributeValueMemberS{Value: sortKey}
	}
	return av, nil
}

func keyAttributes(key valueobjects.Key) Record {
	return Record{
		AttrPK: &types.AttributeValueMemberS{Value: key.PK},
		AttrSK: &types.AttributeValueMemberS{Value: key.SK},
	}
}

// Get loads the record at key into out. It reports false when no record exists.
func (t *Table) Get(ctx context.Context, key valueobjects.Key, out interface{}) (found bool, err error) {
	defer t.observe("GetItem", time.Now(), &err)

	result, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key:       keyAttributes(key),
	})
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if result.Item == nil {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

// Put writes a single record
func (t *Table) Put(ctx context.Context, record Record) (err error) {
	defer t.observe("PutItem", time.Now(), &err)

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      record,
	})
	return err
}

// QueryPartition returns every record in partition pk whose sort key starts
// with skPrefix (all records when empty), following pagination.
func (t *Table) QueryPartition(ctx context.Context, pk, skPrefix string, newestFirst bool) (records []Record, err error) {
	defer t.observe("Query", time.Now(), &err)

	keyCond := expression.Key(AttrPK).Equal(expression.Value(pk))
	if skPrefix != "" {
		keyCond = keyCond.And(expression.Key(AttrSK).BeginsWith(skPrefix))
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build query expression: %w", err)
	}

	return t.collect(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(t.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(!newestFirst),
	})
}

// IndexQuery selects entities through the entity index
type IndexQuery struct {
	EntityType valueobjects.EntityType
	// SortKeyPrefix narrows with begins_with on entitySk
	SortKeyPrefix string
	// Contains filters on entitySk server side
	Contains string
}

// QueryIndex returns every entity record matching q, following pagination
func (t *Table) QueryIndex(ctx context.Context, q IndexQuery) (records []Record, err error) {
	defer t.observe("QueryIndex", time.Now(), &err)

	keyCond := expression.Key(AttrEntityType).Equal(expression.Value(q.EntityType.String()))
	if q.SortKeyPrefix != "" {
		keyCond = keyCond.And(expression.Key(AttrEntitySK).BeginsWith(q.SortKeyPrefix))
	}
	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if q.Contains != "" {
		builder = builder.WithFilter(expression.Name(AttrEntitySK).Contains(q.Contains))
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build index expression: %w", err)
	}

	return t.collect(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(t.tableName),
		IndexName:                 aws.String(t.indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
}

func (t *Table) collect(ctx context.Context, input *dynamodb.QueryInput) ([]Record, error) {
	var records []Record
	paginator := dynamodb.NewQueryPaginator(t.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Items...)
	}
	return records, nil
}

// ScanKeys returns the key of every record in the table
func (t *Table) ScanKeys(ctx context.Context) (keys []valueobjects.Key, err error) {
	defer t.observe("Scan", time.Now(), &err)

	proj := expression.NamesList(expression.Name(AttrPK), expression.Name(AttrSK))
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("build projection: %w", err)
	}

	paginator := dynamodb.NewScanPaginator(t.client, &dynamodb.ScanInput{
		TableName:                aws.String(t.tableName),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var k valueobjects.Key
			if err := attributevalue.UnmarshalMap(item, &k); err != nil {
				return nil, fmt.Errorf("unmarshal key: %w", err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (t *Table) observe(operation string, start time.Time, err *error) {
	if t.observer != nil {
		t.observer.RecordDBOperation(operation, time.Since(start), *err)
	}
}
