package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"hospital-admin/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// The report cache is optional, so a slow Redis must fail fast rather than
// hold up form requests.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = time.Second
	poolSize    = 10
)

// NewRedisClient opens the report cache connection and pings it once. The
// client is closed again when the ping fails.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolSize:     poolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	log.WithFields(logrus.Fields{"addr": addr, "db": cfg.DB}).Info("Report cache connected to Redis")

	return client, nil
}
