package middleware

import (
    "net/http"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/campus-events/pkg/logger"
    "github.com/d60-Lab/campus-events/pkg/response"
)

// Recovery panic 恢复：写日志、上报 sentry（已配置 DSN 时）、返回 500
func Recovery() gin.HandlerFunc {
    return func(c *gin.Context) {
        defer func() {
            if r := recover(); r != nil {
                logger.Error("panic recovered",
                    zap.Any("panic", r),
                    zap.String("path", c.Request.URL.Path),
                )
                if hub := sentry.CurrentHub(); hub.Client() != nil {
                    hub.Recover(r)
                    sentry.Flush(2 * time.Second)
                }
                c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
                    Code:    http.StatusInternalServerError,
                    Message: "internal server error",
                })
            }
        }()
        c.Next()
    }
}
