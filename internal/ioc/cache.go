package ioc

import (
	"time"

	"gitee.com/mcaid/notification/internal/repository"
	"gitee.com/mcaid/notification/internal/repository/cache/local"
	"gitee.com/mcaid/notification/internal/repository/cache/redis"
	"gitee.com/mcaid/notification/internal/repository/dao"
	ca "github.com/patrickmn/go-cache"
)

func InitGoCache() *ca.Cache {
	const cleanupInterval = 2 * time.Minute
	return ca.New(local.DefaultExpiration, cleanupInterval)
}

// InitUserRepository 本地缓存在前，redis 在后
func InitUserRepository(d dao.UserDAO, lc *local.Cache, rc *redis.Cache) repository.UserRepository {
	return repository.NewUserRepository(d, lc, rc)
}
