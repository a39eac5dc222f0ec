package models

type RejectionReason string

const (
	RejectionProviderNotFound    RejectionReason = "PROVIDER_NOT_FOUND"
	RejectionRequesterNotFound   RejectionReason = "REQUESTER_NOT_FOUND"
	RejectionProviderUnavailable RejectionReason = "PROVIDER_UNAVAILABLE"
	RejectionSlotTaken           RejectionReason = "SLOT_TAKEN"
)

// Outcome of a reservation attempt. Exactly one of Appointment and Rejection
// is set.
type Outcome struct {
	Appointment *Appointment
	Rejection   RejectionReason
}

func (o Outcome) Booked() bool {
	return o.Appointment != nil
}

func Rejected(reason RejectionReason) Outcome {
	return Outcome{Rejection: reason}
}

func Booked(appointment Appointment) Outcome {
	return Outcome{Appointment: &appointment}
}

// Label is used for logs and metric labels.
func (o Outcome) Label() string {
	if o.Booked() {
		return "BOOKED"
	}
	return string(o.Rejection)
}
