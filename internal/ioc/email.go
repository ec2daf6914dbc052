package ioc

import (
	"gitee.com/mcaid/notification/internal/service/provider/email"
	"github.com/gotomicro/ego/core/elog"
)

// InitEmailClient 没有配置 SMTP 时返回 nil
func InitEmailClient() email.Client {
	var cfg email.Config
	unmarshalOptional("notification.email", &cfg)
	if !cfg.Configured() {
		elog.DefaultLogger.Info("未配置 SMTP，邮件通知将被跳过")
		return nil
	}
	return email.NewSMTPClient(cfg)
}
