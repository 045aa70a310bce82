package tracer

import (
    "context"
    "fmt"

    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/attribute"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
    "go.opentelemetry.io/otel/sdk/resource"
    sdktrace "go.opentelemetry.io/otel/sdk/trace"

    "github.com/d60-Lab/campus-events/config"
)

// Init 初始化 OTLP HTTP 上报；返回关闭函数
func Init(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
    if !cfg.Otel.Enabled {
        return func(context.Context) error { return nil }, nil
    }

    exp, err := otlptrace.New(ctx, otlptracehttp.NewClient(
        otlptracehttp.WithEndpoint(cfg.Otel.Endpoint),
        otlptracehttp.WithInsecure(),
    ))
    if err != nil {
        return nil, fmt.Errorf("create otlp exporter: %w", err)
    }

    res := resource.NewSchemaless(attribute.String("service.name", "campus-events"))

    tp := sdktrace.NewTracerProvider(
        sdktrace.WithBatcher(exp),
        sdktrace.WithResource(res),
    )
    otel.SetTracerProvider(tp)
    return tp.Shutdown, nil
}
