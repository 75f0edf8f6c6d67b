package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/repository/redisstore"
)

func newStore(t *testing.T) *redisstore.Store {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.New(client, "test")
}

func TestGet_Missing(t *testing.T) {
	store := newStore(t)

	record, err := store.Get(context.Background(), "unknown")

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSave_BumpsGenerationAndRoundTrips(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	transition := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	first := &models.VerificationRecord{WalletID: "w1", Status: models.StatusProcessing, LastTransitionAt: transition}
	require.NoError(t, store.Save(ctx, first))
	assert.Equal(t, uint64(1), first.Generation)

	second := &models.VerificationRecord{
		WalletID:         "w1",
		Status:           models.StatusCompleted,
		LastTransitionAt: transition.Add(time.Minute),
		Payload:          &models.VerificationPayload{ComplianceScore: 972, Country: "US"},
	}
	require.NoError(t, store.Save(ctx, second))
	assert.Equal(t, uint64(2), second.Generation)

	stored, err := store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Equal(t, uint64(2), stored.Generation)
	assert.True(t, transition.Add(time.Minute).Equal(stored.LastTransitionAt))
	require.NotNil(t, stored.Payload)
	assert.Equal(t, 972, stored.Payload.ComplianceScore)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSaveIfGeneration(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	t.Run("missing record", func(t *testing.T) {
		saved, err := store.SaveIfGeneration(ctx, &models.VerificationRecord{WalletID: "absent", Status: models.StatusCompleted}, 0)

		require.NoError(t, err)
		assert.False(t, saved)
		record, err := store.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	require.NoError(t, store.Save(ctx, &models.VerificationRecord{WalletID: "w1", Status: models.StatusProcessing, LastTransitionAt: time.Now()}))

	t.Run("stale generation", func(t *testing.T) {
		saved, err := store.SaveIfGeneration(ctx, &models.VerificationRecord{WalletID: "w1", Status: models.StatusCompleted, LastTransitionAt: time.Now()}, 99)

		require.NoError(t, err)
		assert.False(t, saved)
		stored, err := store.Get(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusProcessing, stored.Status)
		assert.Equal(t, uint64(1), stored.Generation)
	})

	t.Run("matching generation", func(t *testing.T) {
		record := &models.VerificationRecord{WalletID: "w1", Status: models.StatusCompleted, LastTransitionAt: time.Now()}
		saved, err := store.SaveIfGeneration(ctx, record, 1)

		require.NoError(t, err)
		assert.True(t, saved)
		assert.Equal(t, uint64(2), record.Generation)
		stored, err := store.Get(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, stored.Status)
		assert.Equal(t, uint64(2), stored.Generation)
	})

	t.Run("same generation twice", func(t *testing.T) {
		saved, err := store.SaveIfGeneration(ctx, &models.VerificationRecord{WalletID: "w1", Status: models.StatusFailed, LastTransitionAt: time.Now()}, 1)

		require.NoError(t, err)
		assert.False(t, saved)
	})
}

func TestListByStatus(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for wallet, status := range map[string]models.VerificationStatus{
		"w1": models.StatusProcessing,
		"w2": models.StatusCompleted,
		"w3": models.StatusProcessing,
	} {
		require.NoError(t, store.Save(ctx, &models.VerificationRecord{WalletID: wallet, Status: status, LastTransitionAt: time.Now()}))
	}

	records, err := store.ListByStatus(ctx, models.StatusProcessing)

	require.NoError(t, err)
	wallets := make([]string, 0, len(records))
	for _, record := range records {
		assert.Equal(t, models.StatusProcessing, record.Status)
		wallets = append(wallets, record.WalletID)
	}
	assert.ElementsMatch(t, []string{"w1", "w3"}, wallets)
}
