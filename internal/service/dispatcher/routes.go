package dispatcher

import (
	"fmt"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
)

// routes 事件类型到请求渠道的映射，顺序即发送顺序
var routes = map[domain.EventKind][]domain.Channel{
	domain.EventAppointmentCreated:   domain.AllChannels(),
	domain.EventAppointmentUpdated:   domain.AllChannels(),
	domain.EventMedicationPrescribed: domain.AllChannels(),
	domain.EventOrderStatusChanged:   domain.AllChannels(),
	domain.EventHealthAlert:          domain.AllChannels(),
	domain.EventChatMessageReceived:  {domain.ChannelPush},
}

// RequestedChannels 事件类型请求的渠道，未知类型返回 errs.ErrUnsupportedEventKind
func RequestedChannels(kind domain.EventKind) ([]domain.Channel, error) {
	channels, ok := routes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedEventKind, kind)
	}
	res := make([]domain.Channel, len(channels))
	copy(res, channels)
	return res, nil
}
