package ioc

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc 退出前把还没上报的 span 刷出去
type ShutdownFunc func(ctx context.Context) error

// InitTracer 配置了 trace.zipkin 才上报，否则使用 otel 默认的空实现
func InitTracer() ShutdownFunc {
	type Config struct {
		Zipkin      string `yaml:"zipkin"`
		ServiceName string `yaml:"serviceName"`
	}
	cfg := Config{ServiceName: "mcaid-notification"}
	unmarshalOptional("trace", &cfg)
	if cfg.Zipkin == "" {
		return func(context.Context) error { return nil }
	}

	exporter, err := zipkin.New(cfg.Zipkin)
	if err != nil {
		panic(err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)
	elog.DefaultLogger.Info("链路追踪已启用", elog.String("zipkin", cfg.Zipkin))
	return tp.Shutdown
}
