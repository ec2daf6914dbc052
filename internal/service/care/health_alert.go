package care

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
)

// HealthAlertService 健康预警，不落库
type HealthAlertService interface {
	Raise(ctx context.Context, patientID int64, alertType, message string) error
}

type healthAlertService struct {
	users    repository.UserRepository
	notifier dispatcher.Notifier
}

func NewHealthAlertService(users repository.UserRepository, notifier dispatcher.Notifier) HealthAlertService {
	return &healthAlertService{
		users:    users,
		notifier: notifier,
	}
}

// Raise 只有找不到患者时返回错误，发送结果不会回传
func (s *healthAlertService) Raise(ctx context.Context, patientID int64, alertType, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: 预警内容不能为空", errs.ErrInvalidParameter)
	}
	recipient, err := s.users.FindRecipient(ctx, patientID)
	if err != nil {
		return err
	}
	s.notifier.Notify(ctx, domain.NewHealthAlertEvent(recipient, domain.HealthAlertPayload{
		AlertType: alertType,
		Message:   message,
	}))
	return nil
}
