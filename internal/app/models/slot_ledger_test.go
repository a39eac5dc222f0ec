package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotLedger(t *testing.T) {
	t.Run("absent date is never booked", func(t *testing.T) {
		ledger := SlotLedger{}
		assert.False(t, ledger.IsBooked("2024-05-01", "10:00"))

		var empty SlotLedger
		assert.False(t, empty.IsBooked("2024-05-01", "10:00"))
	})

	t.Run("book creates the date lazily and keeps order", func(t *testing.T) {
		ledger := SlotLedger{}
		ledger.Book("2024-05-01", "10:00")
		ledger.Book("2024-05-01", "09:00")

		assert.True(t, ledger.IsBooked("2024-05-01", "10:00"))
		assert.True(t, ledger.IsBooked("2024-05-01", "09:00"))
		assert.False(t, ledger.IsBooked("2024-05-02", "10:00"))
		assert.Equal(t, []string{"10:00", "09:00"}, ledger["2024-05-01"])
		assert.Equal(t, 2, ledger.Count())
	})

	t.Run("clone does not alias", func(t *testing.T) {
		ledger := SlotLedger{"2024-05-01": {"09:00"}}
		cloned := ledger.Clone()
		cloned.Book("2024-05-01", "10:00")
		cloned.Book("2024-05-02", "11:00")

		assert.Equal(t, SlotLedger{"2024-05-01": {"09:00"}}, ledger)
		assert.True(t, cloned.IsBooked("2024-05-01", "10:00"))
		assert.Equal(t, 3, cloned.Count())
	})

	t.Run("clone of nil ledger is writable", func(t *testing.T) {
		var ledger SlotLedger
		cloned := ledger.Clone()
		cloned.Book("2024-05-01", "10:00")

		assert.True(t, cloned.IsBooked("2024-05-01", "10:00"))
		assert.Nil(t, ledger)
	})
}

func TestProviderSummaryNeverCarriesLedger(t *testing.T) {
	provider := Provider{
		ID:          "doc-1",
		Name:        "Dr. Rivera",
		Speciality:  "Dermatologist",
		Fees:        50,
		Available:   true,
		SlotsBooked: SlotLedger{"2024-05-01": {"09:00"}},
	}

	summary := provider.Summary()
	assert.Equal(t, ProviderSummary{Name: "Dr. Rivera", Speciality: "Dermatologist", Fees: 50}, summary)

	cloned := provider.Clone()
	cloned.SlotsBooked.Book("2024-05-01", "10:00")
	assert.False(t, provider.SlotsBooked.IsBooked("2024-05-01", "10:00"))
}

func TestOutcome(t *testing.T) {
	booked := Booked(Appointment{ID: "apt-1"})
	assert.True(t, booked.Booked())
	assert.Equal(t, "BOOKED", booked.Label())
	assert.Empty(t, booked.Rejection)

	rejected := Rejected(RejectionSlotTaken)
	assert.False(t, rejected.Booked())
	assert.Nil(t, rejected.Appointment)
	assert.Equal(t, "SLOT_TAKEN", rejected.Label())
}
