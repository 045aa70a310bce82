package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/campus-events/config"
    "github.com/d60-Lab/campus-events/internal/model"
)

// InitDB 按配置打开数据库连接（sqlite 本地开发 / postgres 部署）
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

    var (
        db  *gorm.DB
        err error
    )
    switch cfg.Database.Driver {
    case "postgres":
        db, err = gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
    case "sqlite", "":
        db, err = gorm.Open(sqlite.Open(cfg.Database.DSN), gormCfg)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
    }
    if err != nil {
        return nil, fmt.Errorf("open database: %w", err)
    }
    return db, nil
}

// Migrate 建表（幂等）
func Migrate(db *gorm.DB) error {
    return db.AutoMigrate(
        &model.User{},
        &model.Event{},
        &model.StudentInterest{},
        &model.Notification{},
        &model.EventView{},
        &model.EventSave{},
    )
}
