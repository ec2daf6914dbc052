package repository

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository/cache"
	"gitee.com/mcaid/notification/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

// UserRepository 用户仓储，通知只读取联系方式和偏好
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	// FindRecipient 依次查询本地缓存、redis、数据库，缓存故障只记日志
	FindRecipient(ctx context.Context, userID int64) (domain.Recipient, error)
	// UpdatePreferences 用户在个人资料里修改通知偏好，写库后删除缓存
	UpdatePreferences(ctx context.Context, userID int64, prefs domain.NotificationPreferences) error
}

type userRepository struct {
	dao        dao.UserDAO
	localCache cache.RecipientCache
	redisCache cache.RecipientCache
	logger     *elog.Component
}

func NewUserRepository(d dao.UserDAO, localCache, redisCache cache.RecipientCache) UserRepository {
	return &userRepository{
		dao:        d,
		localCache: localCache,
		redisCache: redisCache,
		logger:     elog.DefaultLogger,
	}
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	created, err := r.dao.Create(ctx, r.toEntity(u))
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(created), nil
}

func (r *userRepository) FindRecipient(ctx context.Context, userID int64) (domain.Recipient, error) {
	if rec, err := r.localCache.Get(ctx, userID); err == nil {
		return rec, nil
	}

	rec, err := r.redisCache.Get(ctx, userID)
	if err == nil {
		r.setLocal(ctx, rec)
		return rec, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.logger.Warn("从redis获取接收者失败", elog.Int64("userId", userID), elog.FieldErr(err))
	}

	u, err := r.dao.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipient{}, fmt.Errorf("%w: userId = %d", errs.ErrRecipientNotFound, userID)
		}
		return domain.Recipient{}, err
	}

	rec = r.toDomain(u).Recipient()
	if err = r.redisCache.Set(ctx, rec); err != nil {
		r.logger.Warn("回写redis失败", elog.Int64("userId", userID), elog.FieldErr(err))
	}
	r.setLocal(ctx, rec)
	return rec, nil
}

func (r *userRepository) UpdatePreferences(ctx context.Context, userID int64, prefs domain.NotificationPreferences) error {
	err := r.dao.UpdatePreferences(ctx, userID, prefs.Email, prefs.SMS, prefs.Push)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: userId = %d", errs.ErrRecipientNotFound, userID)
		}
		return err
	}

	if err = r.redisCache.Del(ctx, userID); err != nil {
		r.logger.Warn("删除redis缓存失败", elog.Int64("userId", userID), elog.FieldErr(err))
	}
	if err = r.localCache.Del(ctx, userID); err != nil {
		r.logger.Warn("删除本地缓存失败", elog.Int64("userId", userID), elog.FieldErr(err))
	}
	return nil
}

func (r *userRepository) setLocal(ctx context.Context, rec domain.Recipient) {
	if err := r.localCache.Set(ctx, rec); err != nil {
		r.logger.Warn("写入本地缓存失败", elog.Int64("userId", rec.UserID), elog.FieldErr(err))
	}
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		PushID:    u.PushID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      domain.Role(u.Role),
		Preferences: domain.NotificationPreferences{
			Email: u.NotifyEmail,
			SMS:   u.NotifySMS,
			Push:  u.NotifyPush,
		},
		Ctime: u.Ctime,
		Utime: u.Utime,
	}
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		ID:          u.ID,
		Email:       u.Email,
		Phone:       u.Phone,
		PushID:      u.PushID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		NotifyEmail: u.Preferences.Email,
		NotifySMS:   u.Preferences.SMS,
		NotifyPush:  u.Preferences.Push,
	}
}
