package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
)

var outcomeCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notification_dispatch_outcome_total",
		Help: "事件通知各渠道的发送结果统计",
	},
	[]string{"kind", "channel", "status"},
)

func init() {
	prometheus.MustRegister(outcomeCounter)
}
