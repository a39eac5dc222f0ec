package database

import (
	"booking-service/internal/app/config"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMongoURI(t *testing.T) {
	assert.Equal(t, "mongodb://db:27017", MongoURI(config.MongoDB{Host: "db", Port: "27017"}))
	assert.Equal(t, "mongodb://app:secret@db:27017", MongoURI(config.MongoDB{Host: "db", Port: "27017", Username: "app", Password: "secret"}))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedisClient(&config.DriverConfig{
		Redis: config.Redis{Host: mr.Host(), Port: mr.Port()},
	}, zap.NewNop())
	defer client.Close()

	assert.Equal(t, mr.Addr(), client.Options().Addr)
}
