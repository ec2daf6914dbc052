package care

import (
	"context"
	"fmt"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
	"github.com/gotomicro/ego/core/elog"
)

// OrderService 订单
type OrderService interface {
	// UpdateStatus 修改订单状态并通知下单用户，eta 为空时保留原来的预计送达时间
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus, eta string) (domain.Order, error)
}

type orderService struct {
	repo     repository.OrderRepository
	users    repository.UserRepository
	notifier dispatcher.Notifier
	logger   *elog.Component
}

func NewOrderService(repo repository.OrderRepository, users repository.UserRepository,
	notifier dispatcher.Notifier) OrderService {
	return &orderService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   elog.DefaultLogger,
	}
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus, eta string) (domain.Order, error) {
	if !status.IsValid() {
		return domain.Order{}, fmt.Errorf("%w: 订单状态 %q 非法", errs.ErrInvalidParameter, status)
	}
	order, err := s.repo.UpdateStatus(ctx, orderID, status, eta)
	if err != nil {
		return domain.Order{}, err
	}

	recipient, err := s.users.FindRecipient(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("查询下单用户失败，不发送通知",
			elog.Int64("orderId", order.ID),
			elog.FieldErr(err),
		)
		return order, nil
	}
	s.notifier.Notify(ctx, domain.NewOrderStatusChangedEvent(recipient, domain.OrderPayload{
		OrderID:           order.ID,
		TrackingNumber:    order.TrackingNumber,
		Status:            order.Status.String(),
		EstimatedDelivery: order.EstimatedDelivery,
	}))
	return order, nil
}
