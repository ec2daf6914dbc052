package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter     = errors.New("参数错误")
	ErrUnsupportedEventKind = errors.New("不支持的事件类型")
	ErrTransport            = errors.New("渠道传输失败")
	ErrUnconfigured         = errors.New("渠道未配置")
	ErrSenderPanic          = errors.New("渠道发送发生panic")

	ErrRecipientNotFound   = errors.New("接收者不存在")
	ErrAppointmentNotFound = errors.New("预约记录不存在")
	ErrOrderNotFound       = errors.New("订单记录不存在")
)
