package tracing

import (
	"context"
	"strconv"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
}

// NewProvider 创建一个新的带有链路追踪的供应商
func NewProvider(p provider.Provider) *Provider {
	return &Provider{
		provider: p,
		tracer:   otel.Tracer("mcaid-notification/provider"),
	}
}

func (p *Provider) Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error) {
	// 接收者是手机号/邮箱，属于敏感信息，不进 span
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("notification.eventId", strconv.FormatUint(notification.EventID, 10)),
			attribute.String("notification.kind", notification.Kind.String()),
			attribute.String("notification.channel", notification.Channel.String()),
		))
	defer span.End()

	response, err := p.provider.Send(ctx, notification)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.String("notification.status", string(response.Status)),
		)
	}

	return response, err
}
