package ioc

import (
	"gitee.com/mcaid/notification/internal/service/channel"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
	"gitee.com/mcaid/notification/internal/service/template"
	"github.com/sony/sonyflake"
)

func InitDispatcher(ch channel.Channel, idGen *sonyflake.Sonyflake) *dispatcher.Dispatcher {
	return dispatcher.NewDispatcher(template.NewMapper(), ch, idGen)
}
