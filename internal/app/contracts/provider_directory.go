package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

// ProviderDirectory returns nil with a nil error when a provider or requester
// does not exist.
type ProviderDirectory interface {
	GetProvider(ctx context.Context, providerID string) (*models.Provider, error)
	GetRequesterProfile(ctx context.Context, requesterID string) (*models.Profile, error)
	// SaveSlotLedger replaces the provider ledger when the stored version still
	// equals expectedVersion and bumps it by one. A moved version yields
	// exceptions.ErrLedgerVersionConflict.
	SaveSlotLedger(ctx context.Context, providerID string, ledger models.SlotLedger, expectedVersion int64) error
}
