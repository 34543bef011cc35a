package handlers

import (
	"context"
	"testing"
	"time"

	"gorgonzola/application/commands"
	"gorgonzola/application/commands/bus"
	"gorgonzola/infrastructure/persistence/memory"
	pkgerrors "gorgonzola/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingObserver struct{ n int }

func (o *countingObserver) RecordPriceSubmitted() { o.n++ }

func price(v float64) *float64 { return &v }

func newCommandBus(t *testing.T, store *memory.Store, observer PriceSubmissionObserver) *bus.CommandBus {
	t.Helper()
	handler := NewSubmitPriceHandler(store, observer, zap.NewNop())
	b := bus.NewCommandBus()
	pipeline := bus.NewPipeline(bus.LoggingMiddleware(zap.NewNop()))
	require.NoError(t, b.Register(commands.SubmitPriceCommand{}, pipeline.Execute(bus.HandlerFor(handler.Handle))))
	return b
}

func TestSubmitPrice_Stores(t *testing.T) {
	store := memory.NewStore()
	observer := &countingObserver{}
	b := newCommandBus(t, store, observer)
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	err := b.Send(context.Background(), commands.SubmitPriceCommand{
		PriceID:     "p-1",
		ItemID:      "5010",
		Price:       price(250),
		Notes:       "Serbule vendor",
		SubmittedAt: at,
	})

	require.NoError(t, err)
	prices, err := store.ListForItem(context.Background(), "5010")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, "p-1", prices[0].ID)
	assert.Equal(t, 250.0, prices[0].Price)
	assert.Equal(t, "2024-06-01T12:00:00.000000000Z", prices[0].Timestamp)
	assert.Equal(t, 1, observer.n)
}

func TestSubmitPrice_ZeroPriceIsAllowed(t *testing.T) {
	store := memory.NewStore()
	b := newCommandBus(t, store, nil)

	err := b.Send(context.Background(), commands.SubmitPriceCommand{
		PriceID: "p-0", ItemID: "1", Price: price(0), SubmittedAt: time.Now(),
	})

	require.NoError(t, err)
}

func TestSubmitPrice_Validation(t *testing.T) {
	store := memory.NewStore()
	b := newCommandBus(t, store, nil)

	tests := []struct {
		name string
		cmd  commands.SubmitPriceCommand
		want string
	}{
		{"missing price", commands.SubmitPriceCommand{PriceID: "p", ItemID: "1"}, "price is required"},
		{"missing item", commands.SubmitPriceCommand{PriceID: "p", Price: price(1)}, "itemId is required"},
		{"negative", commands.SubmitPriceCommand{PriceID: "p", ItemID: "1", Price: price(-5)}, "price must be greater than or equal to 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Send(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	keys, err := store.ScanKeys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}
