package ioc

import (
	"fmt"

	prodioc "gitee.com/mcaid/notification/internal/ioc"
	"gitee.com/mcaid/notification/internal/repository/dao"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN 本地 docker 中的 mysql
const DSN = "root:root@tcp(localhost:13316)/mcaid?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=True&loc=Local&timeout=1s&readTimeout=3s&writeTimeout=3s"

func InitDB() *gorm.DB {
	prodioc.WaitForDBSetup(DSN)
	db, err := gorm.Open(mysql.Open(DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		panic(fmt.Errorf("数据库连接失败: %w", err))
	}
	if err = dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
