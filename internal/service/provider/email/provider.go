package email

import (
	"context"
	"fmt"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/service/provider"
)

type emailProvider struct {
	client Client
}

// NewProvider 邮件供应商，cli 为 nil 表示没有配置邮件服务
func NewProvider(cli Client) provider.Provider {
	return &emailProvider{client: cli}
}

func (p *emailProvider) Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error) {
	if p.client == nil {
		return domain.SendResponse{}, fmt.Errorf("%w: 邮件服务", errs.ErrUnconfigured)
	}
	err := p.client.Send(ctx, Message{
		To:      notification.Receiver,
		Subject: notification.Email.Subject,
		Text:    notification.Email.Text,
		HTML:    notification.Email.HTML,
	})
	if err != nil {
		return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrTransport, err)
	}
	return domain.SendResponse{
		EventID:  notification.EventID,
		Channel:  notification.Channel,
		Receiver: notification.Receiver,
		Status:   domain.SendStatusSucceeded,
	}, nil
}
