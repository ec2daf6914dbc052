package dispatcher

import (
	"context"

	"gitee.com/mcaid/notification/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/notifier.mock.go -package=dispatchermocks -typed Notifier

// Notifier 业务写入成功后触发通知。调用方不等待结果，也不会因通知失败而失败
type Notifier interface {
	Notify(ctx context.Context, evt domain.DomainEvent)
}

// Mapper 把事件渲染成各渠道的内容
type Mapper interface {
	Map(evt domain.DomainEvent) (domain.Messages, error)
}

// IDGenerator 事件ID生成器，sonyflake 满足该接口
type IDGenerator interface {
	NextID() (uint64, error)
}
