package constvars

const (
	MongoCollectionProviders    = "doctors"
	MongoCollectionUsers        = "users"
	MongoCollectionAppointments = "appointments"
)
