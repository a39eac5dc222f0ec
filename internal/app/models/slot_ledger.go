package models

// SlotLedger maps a slot date to the time labels already booked on it.
// A label never appears twice under the same date.
type SlotLedger map[string][]string

func (l SlotLedger) IsBooked(slotDate, slotTime string) bool {
	for _, booked := range l[slotDate] {
		if booked == slotTime {
			return true
		}
	}
	return false
}

// Book appends slotTime under slotDate, creating the date on first use.
// Callers check IsBooked first; Book does not.
func (l SlotLedger) Book(slotDate, slotTime string) {
	l[slotDate] = append(l[slotDate], slotTime)
}

func (l SlotLedger) Clone() SlotLedger {
	cloned := make(SlotLedger, len(l))
	for slotDate, times := range l {
		cloned[slotDate] = append([]string(nil), times...)
	}
	return cloned
}

func (l SlotLedger) Count() int {
	total := 0
	for _, times := range l {
		total += len(times)
	}
	return total
}
