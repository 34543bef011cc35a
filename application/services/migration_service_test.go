package services

import (
	"context"
	"testing"

	"gorgonzola/domain/core/entities"
	"gorgonzola/infrastructure/persistence/memory"
	pkgerrors "gorgonzola/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMigrationMetrics struct {
	mock.Mock
}

func (m *mockMigrationMetrics) RecordMigration(ctx context.Context, name string, deleted int) error {
	return m.Called(ctx, name, deleted).Error(0)
}

func seededTable(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.PutItems(ctx, []*entities.Item{{ID: "1", Name: "Apple"}, {ID: "2", Name: "Flour"}}))
	require.NoError(t, store.PutNPCs(ctx, []*entities.NPC{{ID: "Joeh", Name: "Joeh"}}))
	require.NoError(t, store.Save(ctx, &entities.Price{ID: "p", ItemID: "1", Timestamp: "2024"}))
	return store
}

func TestMigration_DeleteAll(t *testing.T) {
	store := seededTable(t)
	metrics := &mockMigrationMetrics{}
	metrics.On("RecordMigration", mock.Anything, "delete-all", 4).Return(nil)
	svc := NewMigrationService(store, metrics, zap.NewNop())

	msg, err := svc.Run(context.Background(), MigrationDeleteAll)

	require.NoError(t, err)
	assert.Equal(t, "Deleted 4 records", msg)
	keys, err := store.ScanKeys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
	metrics.AssertExpectations(t)
}

func TestMigration_PurgeGameDataKeepsPrices(t *testing.T) {
	store := seededTable(t)
	svc := NewMigrationService(store, nil, zap.NewNop())

	msg, err := svc.Run(context.Background(), MigrationPurgeGameData)

	require.NoError(t, err)
	assert.Equal(t, "Deleted 3 records", msg)
	prices, err := store.ListForItem(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, prices, 1)
}

func TestMigration_EmptyTable(t *testing.T) {
	svc := NewMigrationService(memory.NewStore(), nil, zap.NewNop())

	msg, err := svc.Run(context.Background(), MigrationDeleteAll)

	require.NoError(t, err)
	assert.Equal(t, "Deleted 0 records", msg)
}

func TestMigration_Unknown(t *testing.T) {
	svc := NewMigrationService(memory.NewStore(), nil, zap.NewNop())

	_, err := svc.Run(context.Background(), "drop-everything")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, []string{"delete-all", "purge-game-data"}, Names())
}
