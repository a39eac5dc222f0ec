package constvars

const (
	CreateAppointmentSuccessMessage = "appointment booked"
	GetAppointmentSuccessMessage    = "appointments retrieved"
	HealthCheckSuccessMessage       = "service is healthy"
)
