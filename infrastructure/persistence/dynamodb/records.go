package dynamodb

import (
	"context"
	"fmt"

	"gorgonzola/domain/core/valueobjects"
	pkgerrors "gorgonzola/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// entity is implemented by every catalog entity pointer
type entity interface {
	Key() valueobjects.Key
	SortKey() string
}

// getEntity loads the metadata record at key. Unknown keys become a
// NOT_FOUND AppError naming resource.
func getEntity[T any](ctx context.Context, t *Table, key valueobjects.Key, resource string) (*T, error) {
	var out T
	found, err := t.Get(ctx, key, &out)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get "+resource, err)
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError(resource)
	}
	return &out, nil
}

func queryEntities[T any](ctx context.Context, t *Table, q IndexQuery) ([]*T, error) {
	records, err := t.QueryIndex(ctx, q)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query "+q.EntityType.String(), err)
	}
	return unmarshalAll[T](records)
}

func unmarshalAll[T any](records []Record) ([]*T, error) {
	out := make([]*T, 0, len(records))
	for _, r := range records {
		var v T
		if err := attributevalue.UnmarshalMap(r, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		out = append(out, &v)
	}
	return out, nil
}

func entityRecords[E entity](entityType valueobjects.EntityType, items []E) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, e := range items {
		r, err := NewRecord(e.Key(), entityType, e.SortKey(), e)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
