package ioc

import (
	"fmt"

	"gitee.com/mcaid/notification/internal/service/provider/sms"
	"gitee.com/mcaid/notification/internal/service/provider/sms/client"
	"github.com/gotomicro/ego/core/elog"
)

const (
	SMSVendorAliyun  = "aliyun"
	SMSVendorTencent = "tencent"
)

type SMSConfig struct {
	// Vendor 为空表示没有配置短信，短信渠道会直接跳过
	Vendor          string `yaml:"vendor"`
	RegionID        string `yaml:"regionId"`
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	AppID           string `yaml:"appId"`
	SignName        string `yaml:"signName"`
	TemplateID      string `yaml:"templateId"`
}

func (c SMSConfig) Template() sms.Config {
	return sms.Config{SignName: c.SignName, TemplateID: c.TemplateID}
}

func InitSMSConfig() SMSConfig {
	var cfg SMSConfig
	unmarshalOptional("notification.sms", &cfg)
	return cfg
}

// InitSMSClient 没有配置时返回 nil
func InitSMSClient(cfg SMSConfig) client.Client {
	cli, err := newSMSClient(cfg)
	if err != nil {
		panic(err)
	}
	if cli == nil {
		elog.DefaultLogger.Info("未配置短信供应商，短信通知将被跳过")
	}
	return cli
}

func newSMSClient(cfg SMSConfig) (client.Client, error) {
	switch cfg.Vendor {
	case "":
		return nil, nil
	case SMSVendorAliyun:
		return client.NewAliyunSMS(cfg.RegionID, cfg.AccessKeyID, cfg.AccessKeySecret)
	case SMSVendorTencent:
		return client.NewTencentCloudSMS(cfg.RegionID, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AppID)
	default:
		return nil, fmt.Errorf("未知的短信供应商 %q", cfg.Vendor)
	}
}
