package client

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ Client = (*TencentCloudSMS)(nil)

// TencentCloudSMS 腾讯云短信实现
type TencentCloudSMS struct {
	client *sms.Client
	appID  *string
}

// NewTencentCloudSMS 创建腾讯云短信实例
func NewTencentCloudSMS(regionID, secretID, secretKey, appID string) (*TencentCloudSMS, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "sms.tencentcloudapi.com"

	client, err := sms.NewClient(credential, regionID, cpf)
	if err != nil {
		return nil, err
	}
	return &TencentCloudSMS{
		client: client,
		appID:  common.StringPtr(appID),
	}, nil
}

func (t *TencentCloudSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}

	request := sms.NewSendSmsRequest()
	request.SmsSdkAppId = t.appID
	request.SignName = common.StringPtr(req.SignName)
	request.TemplateId = common.StringPtr(req.TemplateID)
	request.PhoneNumberSet = common.StringPtrs(req.PhoneNumbers)
	// 腾讯云模版参数按位置填充，正文是第一个参数
	request.TemplateParamSet = common.StringPtrs([]string{req.Content})

	response, err := t.client.SendSmsWithContext(ctx, request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if response.Response == nil {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	statuses := slice.FilterMap(response.Response.SendStatusSet, func(_ int, src *sms.SendStatus) (*sms.SendStatus, bool) {
		return src, src != nil && src.PhoneNumber != nil
	})
	result := SendResp{
		PhoneNumbers: make(map[string]SendRespStatus, len(statuses)),
	}
	if response.Response.RequestId != nil {
		result.RequestID = *response.Response.RequestId
	}
	for _, status := range statuses {
		result.PhoneNumbers[*status.PhoneNumber] = SendRespStatus{
			Code:    deref(status.Code),
			Message: deref(status.Message),
		}
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
