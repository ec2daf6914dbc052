package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// User 用户表，只包含通知需要的联系方式和偏好
type User struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;comment:'用户ID'"`
	Email       string `gorm:"type:VARCHAR(255);uniqueIndex;comment:'邮箱'"`
	Phone       string `gorm:"type:VARCHAR(32);comment:'手机号，为空时不发短信'"`
	PushID      string `gorm:"type:VARCHAR(255);comment:'推送标识，为空时按用户ID推送'"`
	FirstName   string `gorm:"type:VARCHAR(64)"`
	LastName    string `gorm:"type:VARCHAR(64)"`
	Role        string `gorm:"type:VARCHAR(32);comment:'mother/doctor/midwife/service_provider/admin'"`
	NotifyEmail bool   `gorm:"comment:'是否接收邮件通知'"`
	NotifySMS   bool   `gorm:"column:notify_sms;comment:'是否接收短信通知'"`
	NotifyPush  bool   `gorm:"comment:'是否接收推送通知'"`
	Ctime       int64
	Utime       int64
}

func (User) TableName() string {
	return "users"
}

type UserDAO interface {
	Create(ctx context.Context, u User) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]User, error)
	UpdatePreferences(ctx context.Context, id int64, email, sms, push bool) error
}

type userDAO struct {
	db *egorm.Component
}

func NewUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

func (d *userDAO) Create(ctx context.Context, u User) (User, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := d.db.WithContext(ctx).Create(&u).Error
	return u, err
}

func (d *userDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (d *userDAO) FindByIDs(ctx context.Context, ids []int64) (map[int64]User, error) {
	var users []User
	err := d.db.WithContext(ctx).Where("id IN (?)", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]User, len(users))
	for _, u := range users {
		res[u.ID] = u
	}
	return res, nil
}

// UpdatePreferences 布尔值需要用 map 更新，否则 false 会被 gorm 忽略
func (d *userDAO) UpdatePreferences(ctx context.Context, id int64, email, sms, push bool) error {
	res := d.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notify_email": email,
			"notify_sms":   sms,
			"notify_push":  push,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
