package ioc

import (
	"context"

	"gitee.com/mcaid/notification/internal/repository/cache/local"
	"gitee.com/mcaid/notification/internal/service/care"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
)

// App 进程里所有对外暴露的服务，由 wire 组装
type App struct {
	Dispatcher *dispatcher.Dispatcher
	LocalCache *local.Cache
	Tracer     ShutdownFunc

	AppointmentSvc care.AppointmentService
	MedicationSvc  care.MedicationService
	OrderSvc       care.OrderService
	HealthAlertSvc care.HealthAlertService
	ChatSvc        care.ChatService
}

// StartTasks 启动后台任务，ctx 取消时退出
func (a *App) StartTasks(ctx context.Context) {
	go a.LocalCache.Loop(ctx)
}

// Close 等待已经派发的通知发完，再关闭链路追踪
func (a *App) Close(ctx context.Context) error {
	if err := a.Dispatcher.Close(ctx); err != nil {
		return err
	}
	return a.Tracer(ctx)
}
