// Package metrics 为供应商实现添加指标收集的装饰器
package metrics

import (
	"context"
	"time"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sendDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "provider_send_duration_seconds",
			Help:       "供应商发送通知耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"provider", "channel", "status"},
	)

	sendCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_total",
			Help: "供应商发送通知总数",
		},
		[]string{"provider", "channel"},
	)

	sendStatusCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_status_total",
			Help: "供应商发送通知状态统计",
		},
		[]string{"provider", "channel", "status"},
	)
)

func init() {
	// 指标只注册一次，多个供应商共用，用 provider 标签区分
	prometheus.MustRegister(sendDurationSummary, sendCounter, sendStatusCounter)
}

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider provider.Provider
	name     string
}

// NewProvider 创建一个新的带有指标收集的供应商
func NewProvider(name string, p provider.Provider) *Provider {
	return &Provider{
		provider: p,
		name:     name,
	}
}

// Send 发送通知并记录指标
func (p *Provider) Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error) {
	startTime := time.Now()

	sendCounter.WithLabelValues(
		p.name,
		notification.Channel.String(),
	).Inc()

	response, err := p.provider.Send(ctx, notification)

	duration := time.Since(startTime).Seconds()

	status := response.Status
	if err != nil && status == "" {
		status = domain.SendStatusFailed
	}

	sendStatusCounter.WithLabelValues(
		p.name,
		notification.Channel.String(),
		string(status),
	).Inc()

	sendDurationSummary.WithLabelValues(
		p.name,
		notification.Channel.String(),
		string(status),
	).Observe(duration)

	return response, err
}
