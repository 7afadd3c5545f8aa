package service

import (
	"context"
	"encoding/json"
	"time"

	"error_book_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheService Redis JSON 缓存。所有操作失败降级为未命中，不向调用方传播错误。
type CacheService struct {
	Redis *redis.Client
}

func NewCacheService(rdb *redis.Client) *CacheService {
	return &CacheService{Redis: rdb}
}

// Get 读取缓存并反序列化到 dest，返回是否命中
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Log.Warn("cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set 序列化并带 TTL 写入
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expire time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.Redis.Set(ctx, key, data, expire).Err(); err != nil {
		logger.Log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *CacheService) Delete(ctx context.Context, key string) {
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		logger.Log.Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
