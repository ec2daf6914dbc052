package provider

import (
	"context"
	"sync/atomic"

	"gitee.com/mcaid/notification/internal/domain"
)

// MockProvider 只计数、永远成功，压测和本地联调时使用
type MockProvider struct {
	count int64
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Send(_ context.Context, notification domain.Notification) (domain.SendResponse, error) {
	atomic.AddInt64(&m.count, 1)
	return domain.SendResponse{
		EventID:  notification.EventID,
		Channel:  notification.Channel,
		Receiver: notification.Receiver,
		Status:   domain.SendStatusSucceeded,
	}, nil
}

func (m *MockProvider) Count() int64 {
	return atomic.LoadInt64(&m.count)
}
