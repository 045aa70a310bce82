package config

import (
    "strings"
    "time"

    "github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
    Server   ServerConfig   `mapstructure:"server"`
    Database DatabaseConfig `mapstructure:"database"`
    Redis    RedisConfig    `mapstructure:"redis"`
    JWT      JWTConfig      `mapstructure:"jwt"`
    Log      LogConfig      `mapstructure:"log"`
    Sentry   SentryConfig   `mapstructure:"sentry"`
    Otel     OtelConfig     `mapstructure:"otel"`
}

type ServerConfig struct {
    Addr string `mapstructure:"addr"`
    Mode string `mapstructure:"mode"` // debug / release
}

type DatabaseConfig struct {
    Driver string `mapstructure:"driver"` // sqlite / postgres
    DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
    Enabled bool   `mapstructure:"enabled"`
    Addr    string `mapstructure:"addr"`
    DB      int    `mapstructure:"db"`
}

type JWTConfig struct {
    Secret string        `mapstructure:"secret"`
    TTL    time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
    Level  string `mapstructure:"level"`
    Format string `mapstructure:"format"`
}

type SentryConfig struct {
    DSN string `mapstructure:"dsn"`
}

type OtelConfig struct {
    Enabled  bool   `mapstructure:"enabled"`
    Endpoint string `mapstructure:"endpoint"`
}

// Load 读取 config.yaml，环境变量以 CAMPUS_ 前缀覆盖
func Load() (*Config, error) {
    v := viper.New()
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath(".")
    v.AddConfigPath("./config")

    v.SetEnvPrefix("CAMPUS")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    v.SetDefault("server.addr", ":8080")
    v.SetDefault("server.mode", "debug")
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "campus.db")
    v.SetDefault("redis.enabled", false)
    v.SetDefault("redis.addr", "127.0.0.1:6379")
    v.SetDefault("jwt.secret", "dev-secret-change-me")
    v.SetDefault("jwt.ttl", "24h")
    v.SetDefault("log.level", "info")
    v.SetDefault("log.format", "json")
    v.SetDefault("otel.enabled", false)

    if err := v.ReadInConfig(); err != nil {
        // 允许无配置文件启动（全部走默认值 + 环境变量）
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
