package database

import (
	"booking-service/internal/app/config"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

func NewMongoDB(driverConfig *config.DriverConfig, logger *zap.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dbOptions := options.Client().ApplyURI(MongoURI(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		logger.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		logger.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	logger.Info("Successfully connected to mongo database",
		zap.String("host", driverConfig.MongoDB.Host),
		zap.String("database", driverConfig.MongoDB.DbName),
	)
	return client
}

// MongoURI leaves credentials out when no username is configured.
func MongoURI(cfg config.MongoDB) string {
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
}
