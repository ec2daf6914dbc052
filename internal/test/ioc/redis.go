package ioc

import (
	prodioc "gitee.com/mcaid/notification/internal/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// InitRedisClient 本地 docker 中的 redis，走和线上一样的初始化逻辑
func InitRedisClient() *redis.Client {
	econf.Set("redis", map[string]any{
		"addr": "localhost:6379",
	})
	return prodioc.InitRedisClient()
}
