package dispatcher

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/service/channel"
	"gitee.com/mcaid/notification/internal/service/preference"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Notifier = (*Dispatcher)(nil)

// Dispatcher 把一个领域事件扇出到允许的各个渠道。
// 各渠道并发发送，互不影响；结果只记录日志和指标，不回传给触发事件的业务方
type Dispatcher struct {
	mapper  Mapper
	channel channel.Channel
	idGen   IDGenerator
	tracer  trace.Tracer
	logger  *elog.Component

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

// NewDispatcher ch 一般是 channel.Dispatcher，按通知的渠道路由
func NewDispatcher(mapper Mapper, ch channel.Channel, idGen IDGenerator) *Dispatcher {
	return &Dispatcher{
		mapper:  mapper,
		channel: ch,
		idGen:   idGen,
		tracer:  otel.Tracer("mcaid-notification/dispatcher"),
		logger:  elog.DefaultLogger,
	}
}

// Plan 计算事件最终会发送的渠道
func (d *Dispatcher) Plan(evt domain.DomainEvent) ([]domain.Channel, error) {
	requested, err := RequestedChannels(evt.Kind)
	if err != nil {
		return nil, err
	}
	if !evt.Accepts() {
		return nil, fmt.Errorf("%w: 事件 %s 的负载类型不匹配", errs.ErrUnsupportedEventKind, evt.Kind)
	}
	return preference.SelectChannels(evt.Recipient, requested), nil
}

// Notify 在独立的 goroutine 中执行 Dispatch，不继承调用方的取消信号
func (d *Dispatcher) Notify(ctx context.Context, evt domain.DomainEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("通知分发器已关闭，丢弃事件",
			elog.String("kind", evt.Kind.String()),
			elog.Int64("userId", evt.Recipient.UserID),
		)
		return
	}

	detached := context.WithoutCancel(ctx)
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("事件通知发生panic",
					elog.String("kind", evt.Kind.String()),
					elog.Any("panic", r),
					elog.String("stack", string(debug.Stack())),
				)
			}
		}()
		d.Dispatch(detached, evt)
	}()
}

// Close 等待所有进行中的 Notify 完成，之后的 Notify 会被丢弃
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch 同步地完成一次事件扇出，返回每个渠道的结果。
// 未知事件类型只记一条错误日志，不发送任何渠道
func (d *Dispatcher) Dispatch(ctx context.Context, evt domain.DomainEvent) []domain.DispatchOutcome {
	if evt.ID == 0 {
		id, err := d.idGen.NextID()
		if err != nil {
			d.logger.Warn("生成事件ID失败", elog.FieldErr(err))
		}
		evt.ID = id
	}

	ctx, span := d.tracer.Start(ctx, "Dispatcher.Dispatch",
		trace.WithAttributes(
			attribute.String("event.id", strconv.FormatUint(evt.ID, 10)),
			attribute.String("event.kind", evt.Kind.String()),
			attribute.Int64("event.userId", evt.Recipient.UserID),
		))
	defer span.End()

	allowed, err := d.Plan(evt)
	if err != nil {
		d.logger.Error("无法分发事件",
			elog.Any("eventId", evt.ID),
			elog.String("kind", evt.Kind.String()),
			elog.FieldErr(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil
	}
	if len(allowed) == 0 {
		d.logger.Debug("没有可发送的渠道",
			elog.Any("eventId", evt.ID),
			elog.String("kind", evt.Kind.String()),
			elog.Int64("userId", evt.Recipient.UserID),
		)
		return nil
	}

	msgs, err := d.mapper.Map(evt)
	if err != nil {
		d.logger.Error("渲染通知内容失败",
			elog.Any("eventId", evt.ID),
			elog.String("kind", evt.Kind.String()),
			elog.FieldErr(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil
	}

	notifications := make([]domain.Notification, 0, len(allowed))
	for _, ch := range allowed {
		if msgs.Has(ch) {
			notifications = append(notifications, domain.NewNotification(evt, ch, msgs))
		}
	}

	// 每个 goroutine 只写自己下标的结果
	outcomes := make([]domain.DispatchOutcome, len(notifications))
	var wg sync.WaitGroup
	for i := range notifications {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = d.send(ctx, notifications[i])
		}()
	}
	wg.Wait()

	d.record(evt, outcomes, span)
	return outcomes
}

// send 发送一个渠道，panic 被转换成失败结果
func (d *Dispatcher) send(ctx context.Context, n domain.Notification) (outcome domain.DispatchOutcome) {
	outcome = domain.DispatchOutcome{
		EventID:  n.EventID,
		Channel:  n.Channel,
		Receiver: n.Receiver,
	}
	defer func() {
		if r := recover(); r != nil {
			outcome.Status = domain.SendStatusFailed
			outcome.Err = fmt.Errorf("%w: %v", errs.ErrSenderPanic, r)
		}
	}()

	resp, err := d.channel.Send(ctx, n)
	if err != nil {
		outcome.Status = domain.SendStatusFailed
		outcome.Err = err
		return outcome
	}
	outcome.Status = resp.Status
	if outcome.Status == "" {
		outcome.Status = domain.SendStatusSucceeded
	}
	return outcome
}

func (d *Dispatcher) record(evt domain.DomainEvent, outcomes []domain.DispatchOutcome, span trace.Span) {
	var failures *multierror.Error
	var succeeded, skipped int
	for _, o := range outcomes {
		outcomeCounter.WithLabelValues(evt.Kind.String(), o.Channel.String(), string(o.Status)).Inc()

		fields := []elog.Field{
			elog.Any("eventId", o.EventID),
			elog.String("kind", evt.Kind.String()),
			elog.String("channel", o.Channel.String()),
		}
		switch o.Status {
		case domain.SendStatusSucceeded:
			succeeded++
			d.logger.Debug("渠道发送成功", fields...)
		case domain.SendStatusSkipped:
			skipped++
			d.logger.Info("渠道跳过发送", fields...)
		default:
			d.logger.Warn("渠道发送失败", append(fields, elog.FieldErr(o.Err))...)
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", o.Channel, o.Err))
		}
	}

	span.SetAttributes(
		attribute.Int("event.succeeded", succeeded),
		attribute.Int("event.skipped", skipped),
		attribute.Int("event.failed", len(outcomes)-succeeded-skipped),
	)
	if err := failures.ErrorOrNil(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.Error("事件通知存在失败渠道",
			elog.Any("eventId", evt.ID),
			elog.String("kind", evt.Kind.String()),
			elog.Int64("userId", evt.Recipient.UserID),
			elog.FieldErr(err),
		)
	}
}
