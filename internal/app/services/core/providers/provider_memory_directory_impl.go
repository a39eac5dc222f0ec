package providers

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"
)

// MemoryDirectory is a ProviderDirectory held in process memory. Reads hand out
// deep copies so callers never share a ledger with the store.
type MemoryDirectory struct {
	mu        sync.RWMutex
	providers map[string]models.Provider
	profiles  map[string]models.Profile
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		providers: make(map[string]models.Provider),
		profiles:  make(map[string]models.Profile),
	}
}

func (d *MemoryDirectory) PutProvider(provider models.Provider) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.providers[provider.ID] = provider.Clone()
}

func (d *MemoryDirectory) PutProfile(profile models.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[profile.ID] = profile
}

// SetAvailability flips the availability flag without touching the ledger.
func (d *MemoryDirectory) SetAvailability(providerID string, available bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	provider, ok := d.providers[providerID]
	if !ok {
		return false
	}
	provider.Available = available
	d.providers[providerID] = provider
	return true
}

func (d *MemoryDirectory) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	provider, ok := d.providers[providerID]
	if !ok {
		return nil, nil
	}
	cloned := provider.Clone()
	return &cloned, nil
}

func (d *MemoryDirectory) GetRequesterProfile(ctx context.Context, requesterID string) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	profile, ok := d.profiles[requesterID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (d *MemoryDirectory) SaveSlotLedger(ctx context.Context, providerID string, ledger models.SlotLedger, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	provider, ok := d.providers[providerID]
	if !ok || provider.SlotsVersion != expectedVersion {
		return exceptions.ErrLedgerVersionConflict
	}
	provider.SlotsBooked = ledger.Clone()
	provider.SlotsVersion++
	d.providers[providerID] = provider
	return nil
}
