package di

import (
	"github.com/redis/go-redis/v9"

	"metastock_backend/internal/domain/repository"
	"metastock_backend/internal/platform/cache"
)

// NewCandleRepository は必要に応じてRedisキャッシュでラップしたCandleRepositoryを返します。
// rdbがnilの場合はキャッシュなしでそのままinnerを返します。
func NewCandleRepository(rdb *redis.Client, inner repository.CandleRepository) repository.CandleRepository {
	if rdb == nil {
		return inner
	}
	ttl := cache.TimeUntilNext8AM()
	return cache.NewCachingCandleRepository(rdb, ttl, inner, "candles")
}
