package repository

import (
	"context"
	"errors"
	"testing"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository/cache"
	"gitee.com/mcaid/notification/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCache struct {
	data   map[int64]domain.Recipient
	getErr error
	setErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[int64]domain.Recipient{}}
}

func (f *fakeCache) Get(_ context.Context, userID int64) (domain.Recipient, error) {
	if f.getErr != nil {
		return domain.Recipient{}, f.getErr
	}
	r, ok := f.data[userID]
	if !ok {
		return domain.Recipient{}, cache.ErrKeyNotFound
	}
	return r, nil
}

func (f *fakeCache) Set(_ context.Context, r domain.Recipient) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[r.UserID] = r
	return nil
}

func (f *fakeCache) Del(_ context.Context, userID int64) error {
	delete(f.data, userID)
	return nil
}

type fakeUserDAO struct {
	dao.UserDAO
	users   map[int64]dao.User
	findErr error
	queries int
}

func (f *fakeUserDAO) FindByID(_ context.Context, id int64) (dao.User, error) {
	f.queries++
	if f.findErr != nil {
		return dao.User{}, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return dao.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserDAO) UpdatePreferences(_ context.Context, id int64, email, sms, push bool) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.NotifyEmail, u.NotifySMS, u.NotifyPush = email, sms, push
	f.users[id] = u
	return nil
}

func testUser() dao.User {
	return dao.User{
		ID:          42,
		Email:       "a@b.com",
		Phone:       "+15550001111",
		FirstName:   "Mary",
		LastName:    "Ade",
		Role:        "mother",
		NotifyEmail: true,
		NotifySMS:   false,
		NotifyPush:  true,
	}
}

func wantRecipient() domain.Recipient {
	return domain.Recipient{
		UserID:    42,
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
}

func TestUserRepository_FindRecipient(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		local       func() *fakeCache
		redis       func() *fakeCache
		dao         func() *fakeUserDAO
		wantErr     error
		wantQueries int
		wantBackSet bool
	}{
		{
			name: "命中本地缓存",
			local: func() *fakeCache {
				c := newFakeCache()
				c.data[42] = wantRecipient()
				return c
			},
			redis:       newFakeCache,
			dao:         func() *fakeUserDAO { return &fakeUserDAO{users: map[int64]dao.User{}} },
			wantQueries: 0,
		},
		{
			name:  "命中redis并回写本地缓存",
			local: newFakeCache,
			redis: func() *fakeCache {
				c := newFakeCache()
				c.data[42] = wantRecipient()
				return c
			},
			dao:         func() *fakeUserDAO { return &fakeUserDAO{users: map[int64]dao.User{}} },
			wantQueries: 0,
			wantBackSet: true,
		},
		{
			name:        "缓存未命中查数据库",
			local:       newFakeCache,
			redis:       newFakeCache,
			dao:         func() *fakeUserDAO { return &fakeUserDAO{users: map[int64]dao.User{42: testUser()}} },
			wantQueries: 1,
			wantBackSet: true,
		},
		{
			name:  "redis故障不影响查询",
			local: newFakeCache,
			redis: func() *fakeCache {
				c := newFakeCache()
				c.getErr = errors.New("i/o timeout")
				c.setErr = errors.New("i/o timeout")
				return c
			},
			dao:         func() *fakeUserDAO { return &fakeUserDAO{users: map[int64]dao.User{42: testUser()}} },
			wantQueries: 1,
			wantBackSet: true,
		},
		{
			name:        "用户不存在",
			local:       newFakeCache,
			redis:       newFakeCache,
			dao:         func() *fakeUserDAO { return &fakeUserDAO{users: map[int64]dao.User{}} },
			wantErr:     errs.ErrRecipientNotFound,
			wantQueries: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			local, redis, d := tc.local(), tc.redis(), tc.dao()
			repo := NewUserRepository(d, local, redis)

			got, err := repo.FindRecipient(context.Background(), 42)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantQueries, d.queries)
			if err != nil {
				return
			}
			assert.Equal(t, wantRecipient(), got)
			if tc.wantBackSet {
				cached, err := local.Get(context.Background(), 42)
				require.NoError(t, err)
				assert.Equal(t, wantRecipient(), cached)
			}
		})
	}
}

func TestUserRepository_UpdatePreferences(t *testing.T) {
	t.Parallel()

	local, redis := newFakeCache(), newFakeCache()
	local.data[42] = wantRecipient()
	redis.data[42] = wantRecipient()
	d := &fakeUserDAO{users: map[int64]dao.User{42: testUser()}}
	repo := NewUserRepository(d, local, redis)

	prefs := domain.NotificationPreferences{Email: false, SMS: true, Push: false}
	require.NoError(t, repo.UpdatePreferences(context.Background(), 42, prefs))
	assert.Empty(t, local.data)
	assert.Empty(t, redis.data)

	got, err := repo.FindRecipient(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, prefs, got.Preferences)

	err = repo.UpdatePreferences(context.Background(), 7, prefs)
	assert.ErrorIs(t, err, errs.ErrRecipientNotFound)
}
