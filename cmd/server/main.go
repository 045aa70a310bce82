package main

import (
    "context"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/campus-events/config"
    "github.com/d60-Lab/campus-events/internal/api/handler"
    "github.com/d60-Lab/campus-events/internal/repository"
    "github.com/d60-Lab/campus-events/internal/router"
    "github.com/d60-Lab/campus-events/internal/service"
    "github.com/d60-Lab/campus-events/pkg/database"
    "github.com/d60-Lab/campus-events/pkg/logger"
    "github.com/d60-Lab/campus-events/pkg/tracer"
)

// @title Campus Events API
// @version 1.0
// @description 校园活动撮合平台：活动发布、兴趣订阅、通知匹配与互动指标
func main() {
    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }
    if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    shutdownTracer, err := tracer.Init(context.Background(), cfg)
    if err != nil {
        logger.Warn("tracer init failed", zap.Error(err))
    } else {
        defer shutdownTracer(context.Background())
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Error("database init failed", zap.Error(err))
        panic(err)
    }
    if err := database.Migrate(db); err != nil {
        logger.Error("database migrate failed", zap.Error(err))
        panic(err)
    }

    var rdb *redis.Client
    if cfg.Redis.Enabled {
        rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
    }

    userRepo := repository.NewUserRepository(db)
    eventRepo := repository.NewEventRepository(db)
    interestRepo := repository.NewInterestRepository(db)
    notifRepo := repository.NewNotificationRepository(db)
    engagementRepo := repository.NewEngagementRepository(db)

    matcher := service.NewMatcherService(interestRepo, notifRepo)
    h := handler.New(
        service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL),
        service.NewEventService(eventRepo, userRepo, matcher),
        service.NewInterestService(interestRepo),
        service.NewInboxService(notifRepo, eventRepo),
        service.NewEngagementService(engagementRepo, eventRepo),
    )

    r := router.New(cfg, h, rdb)
    logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
    if err := r.Run(cfg.Server.Addr); err != nil {
        logger.Error("server exited", zap.Error(err))
    }
}
