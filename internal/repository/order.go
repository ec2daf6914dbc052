package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository/dao"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	// UpdateStatus eta 为空时保留原来的预计送达时间
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, eta string) (domain.Order, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	created, err := r.dao.Create(ctx, dao.Order{
		UserID:            o.UserID,
		TrackingNumber:    o.TrackingNumber,
		Status:            o.Status.String(),
		EstimatedDelivery: sql.NullString{String: o.EstimatedDelivery, Valid: o.EstimatedDelivery != ""},
	})
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(created), nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: id = %d", errs.ErrOrderNotFound, id)
		}
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, eta string) (domain.Order, error) {
	o, err := r.dao.UpdateStatus(ctx, id, status.String(), sql.NullString{String: eta, Valid: eta != ""})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: id = %d", errs.ErrOrderNotFound, id)
		}
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:                o.ID,
		UserID:            o.UserID,
		TrackingNumber:    o.TrackingNumber,
		Status:            domain.OrderStatus(o.Status),
		EstimatedDelivery: o.EstimatedDelivery.String,
		Ctime:             o.Ctime,
		Utime:             o.Utime,
	}
}
