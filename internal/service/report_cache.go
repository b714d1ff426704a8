package service

import (
	"context"
	"encoding/json"
	"time"

	"hospital-admin/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// ReportCacheKey holds the JSON encoded service report.
	ReportCacheKey = "hospital:report:services"

	// ReportGenerationKey is bumped by every Invalidate. A cached report is
	// only served while it carries the current generation.
	ReportGenerationKey = "hospital:report:generation"

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second
)

// setIfGenerationScript writes the report only when no Invalidate ran since
// the generation was read. KEYS[1]=report, KEYS[2]=generation,
// ARGV[1]=expected generation, ARGV[2]=payload, ARGV[3]=ttl in ms.
var setIfGenerationScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// ReportCache stores the last rendered service report. Every insert into
// service, docteurs or patients must call Invalidate.
//
// Get returns the generation observed before the database is read; Set
// drops the report when an Invalidate happened in between. An empty
// generation means Redis could not be read and Set does nothing.
type ReportCache interface {
	Get(ctx context.Context) (report *dto.ReportResponse, generation string, ok bool)
	Set(ctx context.Context, generation string, report *dto.ReportResponse)
	Invalidate(ctx context.Context)
}

type cachedReport struct {
	Generation string             `json:"generation"`
	Report     dto.ReportResponse `json:"report"`
}

// redisReportCache never surfaces Redis failures: a miss falls back to the database.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) ReportCache {
	return &redisReportCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *redisReportCache) Get(ctx context.Context) (*dto.ReportResponse, string, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	values, err := c.client.MGet(ctx, ReportCacheKey, ReportGenerationKey).Result()
	if err != nil {
		c.log.Warnf("Failed to read cached report: %+v", err)
		return nil, "", false
	}

	generation := "0"
	if g, ok := values[1].(string); ok {
		generation = g
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, false
	}

	var entry cachedReport
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.log.Warnf("Failed to decode cached report: %+v", err)
		return nil, generation, false
	}
	if entry.Generation != generation {
		return nil, generation, false
	}
	return &entry.Report, generation, true
}

func (c *redisReportCache) Set(ctx context.Context, generation string, report *dto.ReportResponse) {
	if generation == "" || report == nil || c.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(cachedReport{Generation: generation, Report: *report})
	if err != nil {
		c.log.Warnf("Failed to encode report for cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	keys := []string{ReportCacheKey, ReportGenerationKey}
	stored, err := setIfGenerationScript.Run(ctx, c.client, keys, generation, raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		c.log.Warnf("Failed to cache report: %+v", err)
		return
	}
	if stored == 0 {
		c.log.Debugf("Report cache generation moved past %s, dropping stale report", generation)
	}
}

// Invalidate bumps the generation before deleting the entry, so a failed
// delete still leaves the old entry unservable.
func (c *redisReportCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, ReportGenerationKey)
		pipe.Del(ctx, ReportCacheKey)
		return nil
	})
	if err != nil {
		c.log.Warnf("Failed to invalidate cached report: %+v", err)
	}
}

type noopReportCache struct{}

// NewNoopReportCache is used when Redis is not configured.
func NewNoopReportCache() ReportCache {
	return noopReportCache{}
}

func (noopReportCache) Get(context.Context) (*dto.ReportResponse, string, bool) {
	return nil, "", false
}
func (noopReportCache) Set(context.Context, string, *dto.ReportResponse) {}
func (noopReportCache) Invalidate(context.Context)                       {}
