package channel

import (
	"context"

	"gitee.com/mcaid/notification/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./channel.go -destination=./mocks/channel.mock.go -package=channelmocks -typed Channel

// Channel 渠道接口
type Channel interface {
	// Send 发送通知
	Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error)
}

// Dispatcher 渠道分发器，对外伪装成Channel，作为统一入口
type Dispatcher struct {
	channels map[domain.Channel]Channel
	logger   *elog.Component
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[domain.Channel]Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   elog.DefaultLogger,
	}
}

// Send 按通知的渠道路由，没有注册的渠道视为未配置，直接跳过
func (d *Dispatcher) Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error) {
	ch, ok := d.channels[notification.Channel]
	if !ok || ch == nil {
		d.logger.Info("渠道未注册，跳过发送",
			elog.String("channel", notification.Channel.String()),
			elog.Any("eventId", notification.EventID),
		)
		return skipped(notification), nil
	}
	return ch.Send(ctx, notification)
}

func skipped(notification domain.Notification) domain.SendResponse {
	return domain.SendResponse{
		EventID:  notification.EventID,
		Channel:  notification.Channel,
		Receiver: notification.Receiver,
		Status:   domain.SendStatusSkipped,
	}
}

func failed(notification domain.Notification) domain.SendResponse {
	resp := skipped(notification)
	resp.Status = domain.SendStatusFailed
	return resp
}
