package repository

import (
	"VCS_SMS_Fleet/internal/fleet/model"
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cachedServerRepository struct {
	redis    *redis.Client
	repo     ServerRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func (*cachedServerRepository) getServerCachedKey(id string) string {
	return fmt.Sprintf("server:%s", id)
}

func (c *cachedServerRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	return c.repo.CreateServer(ctx, server)
}

func (c *cachedServerRepository) GetServerById(ctx context.Context, serverId string) (model.Server, error) {
	key := c.getServerCachedKey(serverId)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var server model.Server
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&server); e == nil {
			return server, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("server cache read failed", zap.String("server_id", serverId), zap.Error(err))
	}

	server, err := c.repo.GetServerById(ctx, serverId)
	if err != nil {
		return server, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(server); e == nil {
		if e = c.redis.Set(ctx, key, buf.Bytes(), c.cacheTTL).Err(); e != nil {
			c.logger.Warn("server cache write failed", zap.String("server_id", serverId), zap.Error(e))
		}
	}
	return server, nil
}

func (c *cachedServerRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	return c.repo.GetServers(ctx)
}

func (c *cachedServerRepository) ApplyServerTransition(ctx context.Context, serverId string, transition model.ServerTransition) error {
	if err := c.redis.Del(ctx, c.getServerCachedKey(serverId)).Err(); err != nil {
		return fmt.Errorf("cachedServerRepository.ApplyServerTransition: %w", err)
	}
	return c.repo.ApplyServerTransition(ctx, serverId, transition)
}

func (c *cachedServerRepository) DeleteServerById(ctx context.Context, serverId string) error {
	if err := c.redis.Del(ctx, c.getServerCachedKey(serverId)).Err(); err != nil {
		return fmt.Errorf("cachedServerRepository.DeleteServerById: %w", err)
	}
	return c.repo.DeleteServerById(ctx, serverId)
}

// NewCachedServerRepository caches server lookups, which every check and renewal job performs.
func NewCachedServerRepository(redis *redis.Client, repo ServerRepository, cacheTTL time.Duration, logger *zap.Logger) ServerRepository {
	return &cachedServerRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}
