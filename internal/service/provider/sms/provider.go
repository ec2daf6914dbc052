package sms

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/service/provider"
	"gitee.com/mcaid/notification/internal/service/provider/sms/client"
)

// Config 短信签名和模版，模版只有一个正文参数
type Config struct {
	SignName   string `yaml:"signName"`
	TemplateID string `yaml:"templateId"`
}

// smsProvider SMS供应商
type smsProvider struct {
	name   string
	client client.Client
	cfg    Config
}

// NewSMSProvider SMS供应商，cli 为 nil 表示没有配置短信供应商
func NewSMSProvider(name string, cli client.Client, cfg Config) provider.Provider {
	return &smsProvider{
		name:   name,
		client: cli,
		cfg:    cfg,
	}
}

// Send 发送短信
func (p *smsProvider) Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error) {
	if p.client == nil {
		return domain.SendResponse{}, fmt.Errorf("%w: 短信供应商 %s", errs.ErrUnconfigured, p.name)
	}

	resp, err := p.client.Send(ctx, client.SendReq{
		PhoneNumbers: []string{notification.Receiver},
		SignName:     p.cfg.SignName,
		TemplateID:   p.cfg.TemplateID,
		Content:      notification.SMS.Text,
	})
	if err != nil {
		return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrTransport, err)
	}

	// 腾讯云返回 Ok，阿里云返回 OK
	for phone, status := range resp.PhoneNumbers {
		if !strings.EqualFold(status.Code, client.OK) {
			return domain.SendResponse{}, fmt.Errorf("%w: Phone = %s, Code = %s, Message = %s",
				errs.ErrTransport, phone, status.Code, status.Message)
		}
	}

	return domain.SendResponse{
		EventID:  notification.EventID,
		Channel:  notification.Channel,
		Receiver: notification.Receiver,
		Status:   domain.SendStatusSucceeded,
	}, nil
}
