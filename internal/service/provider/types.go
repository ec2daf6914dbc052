package provider

import (
	"context"

	"gitee.com/mcaid/notification/internal/domain"
)

// Provider 供应商接口，一个供应商对应一种第三方传输（SMTP、短信云服务、推送服务）
//
//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks -typed Provider
type Provider interface {
	// Send 发送消息。未配置时返回 errs.ErrUnconfigured，由渠道层转成跳过
	Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error)
}
