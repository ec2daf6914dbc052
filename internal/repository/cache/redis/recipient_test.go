//go:build e2e

package redis

import (
	"context"
	"testing"
	"time"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

func TestRecipientCacheSuite(t *testing.T) {
	suite.Run(t, new(RecipientCacheTestSuite))
}

type RecipientCacheTestSuite struct {
	suite.Suite
	client *redis.Client
	cache  cache.RecipientCache
}

func (s *RecipientCacheTestSuite) SetupSuite() {
	s.client = redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       0,
	})

	s.cache = NewCache(s.client)
}

func (s *RecipientCacheTestSuite) TearDownSuite() {
	s.client.FlushDB(context.Background())
	s.client.Close()
}

func (s *RecipientCacheTestSuite) SetupTest() {
	s.client.FlushDB(context.Background())
}

func (s *RecipientCacheTestSuite) TestSetAndGet() {
	r := domain.Recipient{
		UserID:    1001,
		Email:     "a@b.com",
		Phone:     "+15550001111",
		FirstName: "Mary",
		LastName:  "Ade",
		Preferences: domain.NotificationPreferences{
			Email: true,
			SMS:   false,
			Push:  true,
		},
	}

	err := s.cache.Set(context.Background(), r)
	s.NoError(err)

	got, err := s.cache.Get(context.Background(), r.UserID)
	s.NoError(err)
	s.Equal(r, got)

	ttl, err := s.client.TTL(context.Background(), cache.RecipientKey(r.UserID)).Result()
	s.NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RecipientCacheTestSuite) TestGetMissing() {
	_, err := s.cache.Get(context.Background(), 2001)
	s.ErrorIs(err, cache.ErrKeyNotFound)
}

func (s *RecipientCacheTestSuite) TestDel() {
	r := domain.Recipient{UserID: 3001, Email: "c@d.com", Preferences: domain.DefaultPreferences()}
	s.NoError(s.cache.Set(context.Background(), r))

	s.NoError(s.cache.Del(context.Background(), r.UserID))

	_, err := s.cache.Get(context.Background(), r.UserID)
	s.ErrorIs(err, cache.ErrKeyNotFound)
}

func (s *RecipientCacheTestSuite) TestCorruptedValue() {
	s.NoError(s.client.Set(context.Background(), cache.RecipientKey(4001), "not-json", 0).Err())

	_, err := s.cache.Get(context.Background(), 4001)
	s.Error(err)
	s.NotErrorIs(err, cache.ErrKeyNotFound)
}
