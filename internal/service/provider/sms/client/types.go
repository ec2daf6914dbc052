package client

import (
	"context"
	"errors"
)

//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=smsmocks -typed Client

const OK = "OK"

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("发送短信失败")
)

// Client 短信供应商客户端
type Client interface {
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

// SendReq 发送请求，短信正文作为模版的唯一参数下发
type SendReq struct {
	PhoneNumbers []string
	SignName     string
	TemplateID   string
	Content      string
}

// SendResp 发送响应
type SendResp struct {
	RequestID string
	// key 为手机号
	PhoneNumbers map[string]SendRespStatus
}

// SendRespStatus 单个手机号的发送状态
type SendRespStatus struct {
	Code    string
	Message string
}
