package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete removes key only while it still holds value.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error)
	// CompareAndExpire resets the TTL of key only while it still holds value.
	CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
