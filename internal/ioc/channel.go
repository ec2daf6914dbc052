package ioc

import (
	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/service/channel"
	"gitee.com/mcaid/notification/internal/service/provider"
	"gitee.com/mcaid/notification/internal/service/provider/console"
	"gitee.com/mcaid/notification/internal/service/provider/email"
	"gitee.com/mcaid/notification/internal/service/provider/metrics"
	"gitee.com/mcaid/notification/internal/service/provider/sms"
	"gitee.com/mcaid/notification/internal/service/provider/sms/client"
	"gitee.com/mcaid/notification/internal/service/provider/tracing"
	"github.com/gotomicro/ego/core/elog"
)

const pushVendorConsole = "console"

func InitChannel(smsCfg SMSConfig, smsCli client.Client, emailCli email.Client) channel.Channel {
	smsVendor := smsCfg.Vendor
	if smsVendor == "" {
		smsVendor = "unconfigured"
	}
	return channel.NewDispatcher(map[domain.Channel]channel.Channel{
		domain.ChannelEmail: channel.NewEmailChannel(decorate("smtp", email.NewProvider(emailCli))),
		domain.ChannelSMS:   channel.NewSMSChannel(decorate(smsVendor, sms.NewSMSProvider(smsVendor, smsCli, smsCfg.Template()))),
		domain.ChannelPush:  channel.NewPushChannel(decorate(pushVendorConsole, initPushProvider())),
	})
}

// initPushProvider 目前只有控制台实现
func initPushProvider() provider.Provider {
	type Config struct {
		Vendor string `yaml:"vendor"`
	}
	var cfg Config
	unmarshalOptional("notification.push", &cfg)
	if cfg.Vendor != "" && cfg.Vendor != pushVendorConsole {
		elog.DefaultLogger.Warn("不支持的推送供应商，使用控制台推送", elog.String("vendor", cfg.Vendor))
	}
	return console.NewProvider()
}

func decorate(name string, p provider.Provider) provider.Provider {
	return tracing.NewProvider(metrics.NewProvider(name, p))
}
