package providers

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDirectory(t *testing.T) {
	ctx := context.Background()

	newDirectory := func() *MemoryDirectory {
		directory := NewMemoryDirectory()
		directory.PutProvider(models.Provider{
			ID:          "doc-1",
			Name:        "Dr. Rivera",
			Fees:        50,
			Available:   true,
			SlotsBooked: models.SlotLedger{"2024-05-01": {"09:00"}},
		})
		directory.PutProfile(models.Profile{ID: "user-1", Name: "Ada"})
		return directory
	}

	t.Run("missing entries are nil without error", func(t *testing.T) {
		directory := newDirectory()

		provider, err := directory.GetProvider(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, provider)

		profile, err := directory.GetRequesterProfile(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("reads are isolated copies", func(t *testing.T) {
		directory := newDirectory()

		provider, err := directory.GetProvider(ctx, "doc-1")
		require.NoError(t, err)
		provider.SlotsBooked.Book("2024-05-01", "10:00")

		again, err := directory.GetProvider(ctx, "doc-1")
		require.NoError(t, err)
		assert.False(t, again.SlotsBooked.IsBooked("2024-05-01", "10:00"))
	})

	t.Run("conditional save bumps the version", func(t *testing.T) {
		directory := newDirectory()
		provider, err := directory.GetProvider(ctx, "doc-1")
		require.NoError(t, err)

		ledger := provider.SlotsBooked.Clone()
		ledger.Book("2024-05-01", "10:00")
		require.NoError(t, directory.SaveSlotLedger(ctx, "doc-1", ledger, provider.SlotsVersion))

		stored, err := directory.GetProvider(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.SlotsVersion)
		assert.True(t, stored.SlotsBooked.IsBooked("2024-05-01", "10:00"))

		err = directory.SaveSlotLedger(ctx, "doc-1", ledger, provider.SlotsVersion)
		assert.ErrorIs(t, err, exceptions.ErrLedgerVersionConflict)
	})

	t.Run("save on unknown provider conflicts", func(t *testing.T) {
		directory := newDirectory()
		err := directory.SaveSlotLedger(ctx, "nope", models.SlotLedger{}, 0)
		assert.ErrorIs(t, err, exceptions.ErrLedgerVersionConflict)
	})

	t.Run("availability flip keeps the ledger", func(t *testing.T) {
		directory := newDirectory()
		require.True(t, directory.SetAvailability("doc-1", false))
		assert.False(t, directory.SetAvailability("nope", false))

		provider, err := directory.GetProvider(ctx, "doc-1")
		require.NoError(t, err)
		assert.False(t, provider.Available)
		assert.True(t, provider.SlotsBooked.IsBooked("2024-05-01", "09:00"))
	})

	t.Run("cancelled context is reported", func(t *testing.T) {
		directory := newDirectory()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := directory.GetProvider(cancelled, "doc-1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
