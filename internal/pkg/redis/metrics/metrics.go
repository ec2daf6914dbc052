package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	// 命令数，按命令名和结果分
	commandTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcaid",
			Subsystem: "redis",
			Name:      "commands_total",
			Help:      "Redis 命令执行次数",
		},
		[]string{"command", "status"},
	)

	commandDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "mcaid",
			Subsystem:  "redis",
			Name:       "command_duration_seconds",
			Help:       "Redis 命令耗时（单条命令和整条管道）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"command"},
	)

	dialTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcaid",
			Subsystem: "redis",
			Name:      "dials_total",
			Help:      "Redis 建连次数",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(commandTotal, commandDuration, dialTotal)
}

// Hook 给 go-redis 客户端挂上 prometheus 指标
type Hook struct{}

func NewHook() *Hook {
	return &Hook{}
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		commandTotal.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

// ProcessPipelineHook 整条管道记一次耗时，每条命令各自计数
func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		commandDuration.WithLabelValues("pipeline").Observe(time.Since(start).Seconds())
		for _, cmd := range cmds {
			commandTotal.WithLabelValues(cmd.Name(), status(cmd.Err())).Inc()
		}
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		dialTotal.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

// status 缓存未命中（redis.Nil）不算失败
func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusOK
}
