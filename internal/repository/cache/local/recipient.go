package local

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

var _ cache.RecipientCache = (*Cache)(nil)

// DefaultExpiration 本地缓存的过期时间比 redis 短，配合键空间通知尽量缩小不一致窗口
const DefaultExpiration = time.Minute

type Cache struct {
	rdb    redis.UniversalClient
	logger *elog.Component
	c      *ca.Cache
}

// NewLocalCache rdb 可以为 nil，此时不监听 redis 的键空间通知
func NewLocalCache(rdb redis.UniversalClient, c *ca.Cache) *Cache {
	return &Cache{
		rdb:    rdb,
		logger: elog.DefaultLogger,
		c:      c,
	}
}

func (l *Cache) Get(_ context.Context, userID int64) (domain.Recipient, error) {
	v, ok := l.c.Get(cache.RecipientKey(userID))
	if !ok {
		return domain.Recipient{}, cache.ErrKeyNotFound
	}
	r, ok := v.(domain.Recipient)
	if !ok {
		l.c.Delete(cache.RecipientKey(userID))
		return domain.Recipient{}, cache.ErrKeyNotFound
	}
	return r, nil
}

func (l *Cache) Set(_ context.Context, r domain.Recipient) error {
	l.c.Set(cache.RecipientKey(r.UserID), r, DefaultExpiration)
	return nil
}

func (l *Cache) Del(_ context.Context, userID int64) error {
	l.c.Delete(cache.RecipientKey(userID))
	return nil
}

// Loop 监听 redis 中接收者键的变更，其他实例修改偏好后删除本地副本。
// 需要 redis 开启 notify-keyspace-events，ctx 取消后退出
func (l *Cache) Loop(ctx context.Context) {
	if l.rdb == nil {
		return
	}
	pubsub := l.rdb.PSubscribe(ctx, "__keyspace@*__:"+cache.RecipientPrefix+":*")
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.handleChange(msg.Channel, msg.Payload)
		}
	}
}

// handleChange channel 形如 __keyspace@0__:recipient:42，payload 是事件名
func (l *Cache) handleChange(channel, event string) {
	idx := strings.Index(channel, "__:")
	if idx < 0 {
		l.logger.Error("监听redis键不正确", elog.String("channel", channel))
		return
	}
	key := channel[idx+len("__:"):]
	if !strings.HasPrefix(key, cache.RecipientPrefix+":") {
		return
	}
	if _, err := strconv.ParseInt(strings.TrimPrefix(key, cache.RecipientPrefix+":"), 10, 64); err != nil {
		l.logger.Error("监听redis键不正确", elog.String("key", key))
		return
	}

	switch event {
	case "set", "del", "expired":
		l.c.Delete(key)
	}
}
