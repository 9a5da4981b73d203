package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glowshelf/go-backend/internal/cfg"
	"github.com/glowshelf/go-backend/internal/repository/redis/converter"
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/clients"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует счётчики статусов годности в Redis.
// Ключ — владелец; день, на который посчитаны счётчики, хранится
// внутри значения, поэтому инвалидация — это обычный DEL,
// а устаревший день трактуется как промах.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.StatusSummaryConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.StatusSummaryConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSummary возвращает закэшированные счётчики владельца на указанный день.
// Промах (нет ключа или счётчики посчитаны на другой день) возвращает nil без ошибки.
func (c *CacheRepo) GetSummary(ctx context.Context, ownerID int64, day string) (*usecase.StatusSummaryRes, error) {
	data, err := c.client.Client.Get(ctx, c.summaryKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.StatusSummaryRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil // повреждённое значение — промах
	}

	if model.Day != day {
		return nil, nil // счётчики на другой день — промах
	}

	return c.conv.ToUseCase(&model), nil
}

// SetSummary кэширует счётчики владельца с TTL из конфигурации.
// Ошибки записи логируются и не считаются фатальными.
func (c *CacheRepo) SetSummary(ctx context.Context, ownerID int64, day string, summary *usecase.StatusSummaryRes) error {
	model := c.conv.ToRedisModel(summary)
	model.Day = day

	data, err := json.Marshal(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal summary for caching (owner %d): %v", ownerID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, c.summaryKey(ownerID), data, c.cfg.SummaryTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteSummary удаляет закэшированные счётчики владельца.
func (c *CacheRepo) DeleteSummary(ctx context.Context, ownerID int64) error {
	if err := c.client.Client.Del(ctx, c.summaryKey(ownerID)).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// summaryKey возвращает Redis-ключ счётчиков одного владельца
func (c *CacheRepo) summaryKey(ownerID int64) string {
	return fmt.Sprintf("summary:%d", ownerID)
}
