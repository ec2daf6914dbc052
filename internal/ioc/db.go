package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/mcaid/notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 按指数退避 ping 数据库，直到可用或者重试次数用完
func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	const (
		initInterval = time.Second
		maxInterval  = 10 * time.Second
		maxRetries   = 10
		pingTimeout  = 5 * time.Second
	)
	strategy, err := retry.NewExponentialBackoffRetryStrategy(initInterval, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("等待数据库就绪超过最大重试次数")
		}
		elog.DefaultLogger.Warn("数据库未就绪，稍后重试", elog.FieldErr(err), elog.Any("next", next))
		time.Sleep(next)
	}
}
