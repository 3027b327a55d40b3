// Package cache provides the Redis layer behind the listings search cache.
package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/logger"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// initialize the Redis client from the redis section of cfg.
func InitRedis(cfg *config.Config) error {
	var tlsConfig *tls.Config
	if cfg.Redis.TLSEnabled {
		if cfg.Redis.TLSCertFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.Redis.TLSCertFile, cfg.Redis.TLSCertFile)
			if err != nil {
				logger.GlobalLogger.Errorf("failed to load TLS certificate: %v", err)
				return fmt.Errorf("failed to load TLS certificate: %v", err)
			}
			tlsConfig = &tls.Config{
				Certificates: []tls.Certificate{cert},
			}
		} else {
			tlsConfig = &tls.Config{}
		}
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Ping(ctx); err != nil {
		logger.GlobalLogger.Errorf("failed to connect to Redis at %s: %v", cfg.RedisAddr(), err)
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return nil
}

// Ping checks the connection, for start-up and the health endpoint.
func Ping(ctx context.Context) error {
	if RedisClient == nil {
		return NewCacheError("ping", ErrNotInitialized, true)
	}
	start := time.Now()
	_, err := RedisClient.Ping(ctx).Result()
	RecordOperationDuration("ping", time.Since(start).Seconds())
	if err != nil {
		IncrementError("ping")
		return NewCacheError("ping", err, true)
	}
	return nil
}

// close the Redis client connection.
func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
	}
}
