package router

import (
    "time"

    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/redis/go-redis/v9"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/campus-events/config"
    _ "github.com/d60-Lab/campus-events/docs"
    "github.com/d60-Lab/campus-events/internal/api/handler"
    "github.com/d60-Lab/campus-events/internal/middleware"
    "github.com/d60-Lab/campus-events/internal/model"
)

// New 组装全部路由与中间件
func New(cfg *config.Config, h *handler.Handler, rdb *redis.Client) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)
    r := gin.New()

    r.Use(middleware.Recovery())
    r.Use(middleware.AccessLog())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    if cfg.Otel.Enabled {
        r.Use(otelgin.Middleware("campus-events"))
    }
    if rdb != nil {
        r.Use(middleware.RedisRateLimit(rdb, 300, time.Minute))
    } else {
        r.Use(middleware.RateLimit(10, 30))
    }

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
    r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

    api := r.Group("/api/v1")
    {
        auth := api.Group("/auth")
        {
            auth.POST("/register", h.Register)
            auth.POST("/login", h.Login)
        }

        authed := api.Group("", middleware.JWTAuth(cfg.JWT.Secret))
        {
            authed.GET("/tags", h.ListTags)

            student := authed.Group("", middleware.RequireRole(model.RoleStudent))
            {
                student.GET("/events", h.ListEvents)
                student.GET("/user/interests", h.GetInterests)
                student.PUT("/user/interests", h.UpdateInterests)
                student.GET("/notifications", h.ListNotifications)
                student.POST("/notifications/mark-read", h.MarkNotificationsRead)
                student.GET("/notifications/unread-count", h.UnreadCount)
                student.POST("/engagement/view/:eventId", h.TrackView)
                student.POST("/engagement/save/:eventId", h.TrackSave)
                student.DELETE("/engagement/save/:eventId", h.RemoveSave)
            }

            organizer := authed.Group("", middleware.RequireRole(model.RoleOrganizer))
            {
                organizer.POST("/events", h.CreateEvent)
                organizer.GET("/events/my", h.ListMyEvents)
                organizer.PUT("/events/:id", h.UpdateEvent)
                organizer.DELETE("/events/:id", h.DeleteEvent)
                organizer.GET("/engagement/metrics/:eventId", h.EventMetrics)
                organizer.GET("/engagement/summary", h.OrganizerSummary)
            }
        }
    }
    return r
}
