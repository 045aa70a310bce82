package logger

import (
    "os"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init 按配置初始化全局日志（level: debug/info/warn/error; format: json/console）
func Init(level, format string) error {
    var lv zapcore.Level
    if err := lv.UnmarshalText([]byte(level)); err != nil {
        lv = zapcore.InfoLevel
    }

    encCfg := zap.NewProductionEncoderConfig()
    encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

    var enc zapcore.Encoder
    if format == "console" {
        encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
        enc = zapcore.NewConsoleEncoder(encCfg)
    } else {
        enc = zapcore.NewJSONEncoder(encCfg)
    }

    core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lv)
    log = zap.New(core, zap.AddCaller())
    return nil
}

// L 返回全局 logger（未 Init 时为 Nop，测试可直接使用）
func L() *zap.Logger { return log }

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

// Sync 进程退出前刷新缓冲
func Sync() { _ = log.Sync() }
