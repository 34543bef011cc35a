package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorgonzola/domain/core/valueobjects"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// UnprocessedError reports writes DynamoDB still refused after every attempt
type UnprocessedError struct {
	Count    int
	Attempts int
}

func (e *UnprocessedError) Error() string {
	return fmt.Sprintf("%d write requests unprocessed after %d attempts", e.Count, e.Attempts)
}

// retryableCodes are API errors worth another attempt
var retryableCodes = map[string]bool{
	"ProvisionedThroughputExceededException": true,
	"ThrottlingException":                    true,
	"RequestLimitExceeded":                   true,
	"InternalServerError":                    true,
}

func isRetryable(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return retryableCodes[apiErr.ErrorCode()]
	}
	return false
}

// BatchPut writes records in chunks of MaxBatchSize
func (t *Table) BatchPut(ctx context.Context, records []Record) (err error) {
	defer t.observe("BatchPut", time.Now(), &err)

	requests := make([]types.WriteRequest, len(records))
	for i, r := range records {
		requests[i] = types.WriteRequest{PutRequest: &types.PutRequest{Item: r}}
	}
	return t.batchWrite(ctx, "put", requests)
}

// BatchDelete removes the records at keys in chunks of MaxBatchSize
func (t *Table) BatchDelete(ctx context.Context, keys []valueobjects.Key) (err error) {
	defer t.observe("BatchDelete", time.Now(), &err)

	requests := make([]types.WriteRequest, len(keys))
	for i, k := range keys {
		requests[i] = types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: keyAttributes(k)}}
	}
	return t.batchWrite(ctx, "delete", requests)
}

func (t *Table) batchWrite(ctx context.Context, op string, requests []types.WriteRequest) error {
	chunks := 0
	for start := 0; start < len(requests); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(requests))
		if err := t.writeChunk(ctx, requests[start:end]); err != nil {
			return fmt.Errorf("batch %s of records %d-%d: %w", op, start, end-1, err)
		}
		chunks++
	}

	t.logger.Debug("Batch write completed",
		zap.String("operation", op),
		zap.Int("records", len(requests)),
		zap.Int("chunks", chunks),
	)
	return nil
}

// writeChunk sends one chunk, resending whatever DynamoDB leaves
// unprocessed, for at most maxRetries attempts.
func (t *Table) writeChunk(ctx context.Context, chunk []types.WriteRequest) error {
	pending := chunk
	attempts := 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		out, err := t.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{t.tableName: pending},
		})
		if err != nil {
			if isRetryable(err) {
				t.logger.Warn("Batch write throttled, retrying",
					zap.Int("attempt", attempts),
					zap.Error(err),
				)
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}

		pending = out.UnprocessedItems[t.tableName]
		if len(pending) > 0 {
			t.logger.Warn("Batch write left unprocessed items",
				zap.Int("attempt", attempts),
				zap.Int("unprocessed", len(pending)),
			)
			return struct{}{}, &UnprocessedError{Count: len(pending), Attempts: attempts}
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(t.newBackOff()),
		backoff.WithMaxTries(uint(t.maxRetries)),
	)
	return err
}
