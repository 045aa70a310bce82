package cacheperf

import (
    "context"
    "fmt"
    "strconv"
    "sync/atomic"
    "time"

    "github.com/redis/go-redis/v9"
    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
)

// UnreadCountService compares strategies for serving the notification badge
// count. The serving path derives the count from raw rows on every call; this
// package exists to measure what a cached variant would buy and what it costs
// in staleness. Any cached strategy adopted for real must recompute-and-compare
// against the derived count in tests.
type UnreadCountService struct {
    db    *gorm.DB
    cache *redis.Client
    ttl   time.Duration

    dbQueries  atomic.Int64
    cacheHits  atomic.Int64
    cacheMiss  atomic.Int64
}

func NewUnreadCountService(db *gorm.DB, cache *redis.Client, ttl time.Duration) *UnreadCountService {
    return &UnreadCountService{db: db, cache: cache, ttl: ttl}
}

func (s *UnreadCountService) key(userID string) string { return "unread:" + userID }

// CountNoCache is the production behavior: derive from rows every time.
func (s *UnreadCountService) CountNoCache(ctx context.Context, userID string) (int64, error) {
    s.dbQueries.Add(1)
    var cnt int64
    err := s.db.WithContext(ctx).
        Model(&model.Notification{}).
        Where("user_id = ? AND is_read = ?", userID, false).
        Count(&cnt).Error
    return cnt, err
}

// CountNaiveCache caches the derived count under a TTL. Cheap, but the badge
// can lag up to ttl behind a fan-out or a mark-read.
func (s *UnreadCountService) CountNaiveCache(ctx context.Context, userID string) (int64, error) {
    if v, err := s.cache.Get(ctx, s.key(userID)).Result(); err == nil {
        s.cacheHits.Add(1)
        return strconv.ParseInt(v, 10, 64)
    }
    s.cacheMiss.Add(1)
    cnt, err := s.CountNoCache(ctx, userID)
    if err != nil {
        return 0, err
    }
    _ = s.cache.Set(ctx, s.key(userID), strconv.FormatInt(cnt, 10), s.ttl).Err()
    return cnt, nil
}

// CountInvalidating reads like CountNaiveCache; writers call Invalidate so
// the next read recomputes. Staleness window shrinks to the read-after-write
// race instead of the TTL.
func (s *UnreadCountService) CountInvalidating(ctx context.Context, userID string) (int64, error) {
    return s.CountNaiveCache(ctx, userID)
}

// Invalidate drops the cached count; call after notification insert or mark-read.
func (s *UnreadCountService) Invalidate(ctx context.Context, userID string) {
    _ = s.cache.Del(ctx, s.key(userID)).Err()
}

func (s *UnreadCountService) Stats() string {
    return fmt.Sprintf("db=%d hit=%d miss=%d", s.dbQueries.Load(), s.cacheHits.Load(), s.cacheMiss.Load())
}
