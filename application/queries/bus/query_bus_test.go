package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupQuery struct {
	ID string
}

func (q lookupQuery) Validate() error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

type liveQuery struct {
	ID string
}

func (q liveQuery) Validate() error { return nil }
func (q liveQuery) NoCache() bool   { return true }

type mapCache struct {
	data map[string]interface{}
}

func (c *mapCache) Get(ctx context.Context, key string) (interface{}, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	c.data[key] = value
	return nil
}

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) RecordCacheHit()  { o.hits++ }
func (o *countingObserver) RecordCacheMiss() { o.misses++ }

func TestQueryBus_Dispatch(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(lookupQuery{}, HandlerFor(func(ctx context.Context, q lookupQuery) (string, error) {
		return "found " + q.ID, nil
	})))

	result, err := Ask[string](context.Background(), b, lookupQuery{ID: "7"})

	require.NoError(t, err)
	assert.Equal(t, "found 7", result)
}

func TestQueryBus_RejectsDuplicateRegistration(t *testing.T) {
	b := NewQueryBus()
	h := HandlerFor(func(ctx context.Context, q lookupQuery) (string, error) { return "", nil })

	require.NoError(t, b.Register(lookupQuery{}, h))
	assert.Error(t, b.Register(lookupQuery{}, h))
}

func TestQueryBus_ValidationAndMissingHandler(t *testing.T) {
	b := NewQueryBus()

	_, err := b.Ask(context.Background(), lookupQuery{})
	assert.ErrorContains(t, err, "id is required")

	_, err = b.Ask(context.Background(), lookupQuery{ID: "1"})
	assert.ErrorContains(t, err, "no handler registered")
}

func TestQueryBus_HandlerErrorsAreWrapped(t *testing.T) {
	sentinel := errors.New("boom")
	b := NewQueryBus()
	require.NoError(t, b.Register(lookupQuery{}, HandlerFor(func(ctx context.Context, q lookupQuery) (string, error) {
		return "", sentinel
	})))

	_, err := b.Ask(context.Background(), lookupQuery{ID: "1"})

	assert.ErrorIs(t, err, sentinel)
}

func TestCachingMiddleware(t *testing.T) {
	cache := &mapCache{data: map[string]interface{}{}}
	observer := &countingObserver{}
	b := NewQueryBus(NewCachingMiddleware(cache, 300, observer))

	calls := 0
	require.NoError(t, b.Register(lookupQuery{}, HandlerFor(func(ctx context.Context, q lookupQuery) (int, error) {
		calls++
		return calls, nil
	})))

	first, err := Ask[int](context.Background(), b, lookupQuery{ID: "a"})
	require.NoError(t, err)
	second, err := Ask[int](context.Background(), b, lookupQuery{ID: "a"})
	require.NoError(t, err)
	other, err := Ask[int](context.Background(), b, lookupQuery{ID: "b"})
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 2, other)
	assert.Equal(t, 1, observer.hits)
	assert.Equal(t, 2, observer.misses)
}

func TestCachingMiddleware_SkipsUncacheableAndErrors(t *testing.T) {
	cache := &mapCache{data: map[string]interface{}{}}
	b := NewQueryBus(NewCachingMiddleware(cache, 300, nil))

	calls := 0
	require.NoError(t, b.Register(liveQuery{}, HandlerFor(func(ctx context.Context, q liveQuery) (int, error) {
		calls++
		return calls, nil
	})))
	failures := 0
	require.NoError(t, b.Register(lookupQuery{}, HandlerFor(func(ctx context.Context, q lookupQuery) (int, error) {
		failures++
		return 0, errors.New("unavailable")
	})))

	for i := 0; i < 2; i++ {
		_, err := b.Ask(context.Background(), liveQuery{ID: "x"})
		require.NoError(t, err)
		_, err = b.Ask(context.Background(), lookupQuery{ID: "x"})
		require.Error(t, err)
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, failures)
	assert.Empty(t, cache.data)
}
