package providers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type providerMongoDirectory struct {
	Providers *mongo.Collection
	Users     *mongo.Collection
}

func NewProviderMongoDirectory(db *mongo.Database) contracts.ProviderDirectory {
	return &providerMongoDirectory{
		Providers: db.Collection(constvars.MongoCollectionProviders),
		Users:     db.Collection(constvars.MongoCollectionUsers),
	}
}

// byID matches ObjectID keys for hex ids and plain string keys otherwise.
func byID(id string) bson.M {
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": objectID}
	}
	return bson.M{"_id": id}
}

func (repo *providerMongoDirectory) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	var provider models.Provider
	err := repo.Providers.FindOne(ctx, byID(providerID)).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (repo *providerMongoDirectory) GetRequesterProfile(ctx context.Context, requesterID string) (*models.Profile, error) {
	var profile models.Profile
	err := repo.Users.FindOne(ctx, byID(requesterID)).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (repo *providerMongoDirectory) SaveSlotLedger(ctx context.Context, providerID string, ledger models.SlotLedger, expectedVersion int64) error {
	filter := byID(providerID)
	if expectedVersion == 0 {
		// Documents written before versioning carry no slots_version field.
		filter["$or"] = bson.A{
			bson.M{"slots_version": int64(0)},
			bson.M{"slots_version": bson.M{"$exists": false}},
		}
	} else {
		filter["slots_version"] = expectedVersion
	}

	if ledger == nil {
		ledger = models.SlotLedger{}
	}
	update := bson.M{
		"$set": bson.M{"slots_booked": ledger},
		"$inc": bson.M{"slots_version": int64(1)},
	}

	result, err := repo.Providers.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrLedgerVersionConflict
	}
	return nil
}
