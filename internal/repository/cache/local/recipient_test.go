package local

import (
	"context"
	"testing"
	"time"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache() *Cache {
	return NewLocalCache(nil, ca.New(time.Minute, 10*time.Minute))
}

func TestCache_SetGetDel(t *testing.T) {
	t.Parallel()

	c := newCache()
	r := domain.Recipient{UserID: 42, Email: "a@b.com", Preferences: domain.DefaultPreferences()}

	_, err := c.Get(context.Background(), 42)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	require.NoError(t, c.Set(context.Background(), r))
	got, err := c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	require.NoError(t, c.Del(context.Background(), 42))
	_, err = c.Get(context.Background(), 42)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestCache_HandleChange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		channel   string
		event     string
		wantFound bool
	}{
		{name: "其他实例更新", channel: "__keyspace@0__:recipient:42", event: "set", wantFound: false},
		{name: "其他实例删除", channel: "__keyspace@0__:recipient:42", event: "del", wantFound: false},
		{name: "redis过期", channel: "__keyspace@3__:recipient:42", event: "expired", wantFound: false},
		{name: "无关事件", channel: "__keyspace@0__:recipient:42", event: "expire", wantFound: true},
		{name: "其他用户", channel: "__keyspace@0__:recipient:43", event: "set", wantFound: true},
		{name: "非法键", channel: "recipient:42", event: "set", wantFound: true},
		{name: "非法用户ID", channel: "__keyspace@0__:recipient:abc", event: "set", wantFound: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newCache()
			require.NoError(t, c.Set(context.Background(), domain.Recipient{UserID: 42}))

			c.handleChange(tc.channel, tc.event)

			_, err := c.Get(context.Background(), 42)
			if tc.wantFound {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, cache.ErrKeyNotFound)
			}
		})
	}
}

func TestCache_LoopWithoutRedis(t *testing.T) {
	t.Parallel()
	// 没有 redis 时立即返回
	newCache().Loop(context.Background())
}
