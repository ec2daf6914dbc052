package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                int64          `gorm:"primaryKey;autoIncrement"`
	UserID            int64          `gorm:"type:BIGINT;index:idx_user_id;comment:'下单用户'"`
	TrackingNumber    string         `gorm:"type:VARCHAR(64);uniqueIndex"`
	Status            string         `gorm:"type:ENUM('pending','confirmed','preparing','out-for-delivery','delivered','cancelled');DEFAULT:'pending'"`
	EstimatedDelivery sql.NullString `gorm:"type:VARCHAR(32)"`
	Ctime             int64
	Utime             int64
}

func (Order) TableName() string {
	return "orders"
}

type OrderDAO interface {
	Create(ctx context.Context, o Order) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	UpdateStatus(ctx context.Context, id int64, status string, eta sql.NullString) (Order, error)
}

type orderDAO struct {
	db *egorm.Component
}

func NewOrderDAO(db *egorm.Component) OrderDAO {
	return &orderDAO{db: db}
}

func (d *orderDAO) Create(ctx context.Context, o Order) (Order, error) {
	now := time.Now().UnixMilli()
	o.Ctime = now
	o.Utime = now
	err := d.db.WithContext(ctx).Create(&o).Error
	return o, err
}

func (d *orderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

// UpdateStatus eta 无效时保留原来的预计送达时间
func (d *orderDAO) UpdateStatus(ctx context.Context, id int64, status string, eta sql.NullString) (Order, error) {
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if eta.Valid {
		updates["estimated_delivery"] = eta
	}

	var res Order
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Order{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&res).Error
	})
	return res, err
}
