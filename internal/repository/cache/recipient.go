package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/mcaid/notification/internal/domain"
)

const (
	RecipientPrefix = "recipient"

	DefaultExpiredTime = 10 * time.Minute
)

var ErrKeyNotFound = errors.New("key not found")

// RecipientCache 缓存用户的联系方式和通知偏好
type RecipientCache interface {
	Get(ctx context.Context, userID int64) (domain.Recipient, error)
	Set(ctx context.Context, r domain.Recipient) error
	Del(ctx context.Context, userID int64) error
}

func RecipientKey(userID int64) string {
	return fmt.Sprintf("%s:%d", RecipientPrefix, userID)
}
