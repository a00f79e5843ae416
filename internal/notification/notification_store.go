package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// KindApprovals tracks the approvals inbox: the consumer bumps its
	// pending counter whenever a lifecycle event lands for an approver.
	KindApprovals = "approvals"
	KindRequests  = "requests"
)

const (
	lastViewedKeyPrefix = "notification:lastviewed:"
	pendingKeyPrefix    = "notification:pending:"
)

func lastViewedKey(userCode, kind string) string {
	return fmt.Sprintf("%s%s:%s", lastViewedKeyPrefix, userCode, kind)
}

func pendingKey(userCode, kind string) string {
	return fmt.Sprintf("%s%s:%s", pendingKeyPrefix, userCode, kind)
}

//go:generate mockgen -source=notification_store.go -destination=mock/notification_store_mock.go -package=mock
type Store interface {
	GetLastViewed(ctx context.Context, userCode, kind string) (*time.Time, error)
	SetLastViewed(ctx context.Context, userCode, kind string, ts time.Time) error
	GetPending(ctx context.Context, userCode, kind string) (int64, error)
	IncrPending(ctx context.Context, userCode, kind string) error
	ResetPending(ctx context.Context, userCode, kind string) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) GetLastViewed(ctx context.Context, userCode, kind string) (*time.Time, error) {
	raw, err := s.rdb.Get(ctx, lastViewedKey(userCode, kind)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (s *redisStore) SetLastViewed(ctx context.Context, userCode, kind string, ts time.Time) error {
	return s.rdb.Set(ctx, lastViewedKey(userCode, kind), ts.UTC().Format(time.RFC3339), 0).Err()
}

func (s *redisStore) GetPending(ctx context.Context, userCode, kind string) (int64, error) {
	count, err := s.rdb.Get(ctx, pendingKey(userCode, kind)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func (s *redisStore) IncrPending(ctx context.Context, userCode, kind string) error {
	return s.rdb.Incr(ctx, pendingKey(userCode, kind)).Err()
}

func (s *redisStore) ResetPending(ctx context.Context, userCode, kind string) error {
	return s.rdb.Del(ctx, pendingKey(userCode, kind)).Err()
}
