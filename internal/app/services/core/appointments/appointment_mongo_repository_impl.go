package appointments

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the requester lookup index and the unique slot index.
func (repo *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("user_id_created_at"),
		},
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "slot_date", Value: 1}, {Key: "slot_time", Value: 1}},
			Options: options.Index().SetName("provider_slot_unique").SetUnique(true),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment models.Appointment) error {
	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", exceptions.ErrDuplicateAppointment, err.Error())
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindByRequester(ctx context.Context, requesterID string) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"user_id": requesterID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Discard(ctx context.Context, appointmentID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": appointmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
