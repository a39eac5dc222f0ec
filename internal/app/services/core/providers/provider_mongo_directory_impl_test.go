package providers

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestProviderMongoDirectory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("GetProvider decodes the ledger", func(mt *mtest.T) {
		objectID := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + constvars.MongoCollectionProviders
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: objectID},
			{Key: "name", Value: "Dr. Rivera"},
			{Key: "fees", Value: 50.0},
			{Key: "available", Value: true},
			{Key: "slots_booked", Value: bson.D{{Key: "2024-05-01", Value: bson.A{"09:00", "10:00"}}}},
			{Key: "slots_version", Value: int64(3)},
		}))

		directory := NewProviderMongoDirectory(mt.DB)
		provider, err := directory.GetProvider(ctx, objectID.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, provider)

		assert.Equal(mt, objectID.Hex(), provider.ID)
		assert.Equal(mt, "Dr. Rivera", provider.Name)
		assert.True(mt, provider.Available)
		assert.Equal(mt, int64(3), provider.SlotsVersion)
		assert.Equal(mt, models.SlotLedger{"2024-05-01": {"09:00", "10:00"}}, provider.SlotsBooked)
	})

	mt.Run("GetProvider on empty result is nil", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + constvars.MongoCollectionProviders
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		directory := NewProviderMongoDirectory(mt.DB)
		provider, err := directory.GetProvider(ctx, "doc-unknown")
		require.NoError(mt, err)
		assert.Nil(mt, provider)
	})

	mt.Run("GetRequesterProfile decodes the profile", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + constvars.MongoCollectionUsers
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "user-1"},
			{Key: "name", Value: "Ada"},
			{Key: "email", Value: "ada@example.com"},
			{Key: "address", Value: bson.D{{Key: "line1", Value: "1 Main St"}, {Key: "line2", Value: ""}}},
		}))

		directory := NewProviderMongoDirectory(mt.DB)
		profile, err := directory.GetRequesterProfile(ctx, "user-1")
		require.NoError(mt, err)
		require.NotNil(mt, profile)
		assert.Equal(mt, "Ada", profile.Name)
		assert.Equal(mt, "1 Main St", profile.Address.Line1)
	})

	mt.Run("server errors are wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		directory := NewProviderMongoDirectory(mt.DB)
		provider, err := directory.GetProvider(ctx, "doc-1")
		assert.Nil(mt, provider)
		var custom *exceptions.CustomError
		require.ErrorAs(mt, err, &custom)
		assert.Equal(mt, 500, custom.StatusCode)
	})

	mt.Run("SaveSlotLedger succeeds when the version matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		directory := NewProviderMongoDirectory(mt.DB)
		err := directory.SaveSlotLedger(ctx, "doc-1", models.SlotLedger{"2024-05-01": {"10:00"}}, 3)
		assert.NoError(mt, err)
	})

	mt.Run("SaveSlotLedger reports a moved version", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		directory := NewProviderMongoDirectory(mt.DB)
		err := directory.SaveSlotLedger(ctx, "doc-1", models.SlotLedger{}, 0)
		assert.ErrorIs(mt, err, exceptions.ErrLedgerVersionConflict)
	})
}

func TestByID(t *testing.T) {
	objectID := primitive.NewObjectID()
	assert.Equal(t, bson.M{"_id": objectID}, byID(objectID.Hex()))
	assert.Equal(t, bson.M{"_id": "doc-1"}, byID("doc-1"))
}
