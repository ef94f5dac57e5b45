package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrStatusNotFound    = errors.New("table has not been synced yet")
	ErrStatusUnavailable = errors.New("sync status cache is unavailable")
)

const (
	// RedisStatusKeyPrefix is followed by the table name.
	RedisStatusKeyPrefix = "sync:last:"

	// Timeout for individual Redis operations
	redisStatusTimeout = 2 * time.Second
)

// SyncStatusService caches the last successful summary per table.
// A nil Redis client turns every call into ErrStatusUnavailable.
type SyncStatusService interface {
	Store(ctx context.Context, summary *dto.SyncSummary) error
	Last(ctx context.Context, table entity.Table) (*dto.SyncStatus, error)
}

type syncStatusService struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
	now         func() time.Time
}

func NewSyncStatusService(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) SyncStatusService {
	return &syncStatusService{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
		now:         time.Now,
	}
}

func statusKey(table string) string {
	return RedisStatusKeyPrefix + table
}

func (s *syncStatusService) Store(ctx context.Context, summary *dto.SyncSummary) error {
	if s.redisClient == nil {
		return ErrStatusUnavailable
	}

	payload, err := json.Marshal(dto.SyncStatus{
		Summary:  *summary,
		SyncedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal sync status: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisStatusTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, statusKey(summary.Table), payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to cache sync status for %s: %+v", summary.Table, err)
		return fmt.Errorf("%w: %v", ErrStatusUnavailable, err)
	}

	return nil
}

func (s *syncStatusService) Last(ctx context.Context, table entity.Table) (*dto.SyncStatus, error) {
	if s.redisClient == nil {
		return nil, ErrStatusUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, redisStatusTimeout)
	defer cancel()

	payload, err := s.redisClient.Get(ctx, statusKey(table.String())).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStatusNotFound
		}
		s.log.Warnf("Failed to read sync status for %s: %+v", table, err)
		return nil, fmt.Errorf("%w: %v", ErrStatusUnavailable, err)
	}

	var status dto.SyncStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil, fmt.Errorf("unmarshal sync status: %w", err)
	}

	return &status, nil
}
