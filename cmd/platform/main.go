package main

import (
	"context"
	"time"

	"gitee.com/mcaid/notification/cmd/platform/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := ioc.InitApp()
	app.StartTasks(ctx)

	err := ego.New(ego.WithBeforeStopClean(func() error {
		cancel()
		stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stopCancel()
		return app.Close(stopCtx)
	})).Serve(
		// 指标和健康检查
		egovernor.Load("server.governor").Build(),
	).Run()
	if err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
