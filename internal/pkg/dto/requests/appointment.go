package requests

type CreateAppointment struct {
	ProviderID string `json:"provider_id" validate:"required,max=64"`
	SlotDate   string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	SlotTime   string `json:"slot_time" validate:"required,datetime=15:04"`
}
