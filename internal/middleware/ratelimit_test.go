package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/gin-gonic/gin"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestRedisRateLimit(t *testing.T) {
    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.Use(RedisRateLimit(rdb, 3, time.Minute))
    r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

    for i := 0; i < 3; i++ {
        w := httptest.NewRecorder()
        r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
        require.Equal(t, http.StatusOK, w.Code, "request %d", i)
    }

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
    assert.Equal(t, http.StatusTooManyRequests, w.Code)

    // 窗口过期后恢复
    mr.FastForward(2 * time.Minute)
    w = httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
    assert.Equal(t, http.StatusOK, w.Code)
}

func TestInProcessRateLimit(t *testing.T) {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.Use(RateLimit(1, 2))
    r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

    ok, limited := 0, 0
    for i := 0; i < 5; i++ {
        w := httptest.NewRecorder()
        r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
        switch w.Code {
        case http.StatusOK:
            ok++
        case http.StatusTooManyRequests:
            limited++
        }
    }
    // burst=2：超出的请求被限
    assert.Equal(t, 2, ok)
    assert.Equal(t, 3, limited)
}
