package middleware

import (
    "context"
    "sync"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/redis/go-redis/v9"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/campus-events/pkg/response"
)

// RateLimit 按客户端 IP 限流（进程内 token bucket）
func RateLimit(rps float64, burst int) gin.HandlerFunc {
    var (
        mu       sync.Mutex
        limiters = make(map[string]*rate.Limiter)
    )
    get := func(key string) *rate.Limiter {
        mu.Lock()
        defer mu.Unlock()
        l, ok := limiters[key]
        if !ok {
            l = rate.NewLimiter(rate.Limit(rps), burst)
            limiters[key] = l
        }
        return l
    }
    return func(c *gin.Context) {
        if !get(c.ClientIP()).Allow() {
            response.TooManyRequests(c)
            return
        }
        c.Next()
    }
}

// RedisRateLimit 固定窗口限流，多实例部署时共享计数
func RedisRateLimit(rdb *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
    return func(c *gin.Context) {
        key := "ratelimit:" + c.ClientIP()
        ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
        defer cancel()

        cnt, err := rdb.Incr(ctx, key).Result()
        if err != nil {
            // redis 不可用时放行，限流不是正确性保证
            c.Next()
            return
        }
        if cnt == 1 {
            rdb.Expire(ctx, key, window)
        }
        if cnt > limit {
            response.TooManyRequests(c)
            return
        }
        c.Next()
    }
}
