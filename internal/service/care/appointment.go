package care

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
	"github.com/gotomicro/ego/core/elog"
)

// AppointmentService 预约。写入成功后异步通知对方，通知结果不影响返回值
type AppointmentService interface {
	// Create 医护人员为患者创建预约，通知患者
	Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	// Book 孕产妇自己预约医护人员，通知医护人员
	Book(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	// Update 修改预约，通知患者
	Update(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
}

type appointmentService struct {
	repo     repository.AppointmentRepository
	users    repository.UserRepository
	notifier dispatcher.Notifier
	logger   *elog.Component
}

func NewAppointmentService(repo repository.AppointmentRepository, users repository.UserRepository,
	notifier dispatcher.Notifier) AppointmentService {
	return &appointmentService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   elog.DefaultLogger,
	}
}

func (s *appointmentService) Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	if err := s.validate(a); err != nil {
		return domain.Appointment{}, err
	}
	if a.Status == "" {
		a.Status = domain.AppointmentScheduled
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.Appointment{}, err
	}
	s.notify(ctx, created, domain.EventAppointmentCreated, false)
	return created, nil
}

func (s *appointmentService) Book(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	if err := s.validate(a); err != nil {
		return domain.Appointment{}, err
	}
	if a.Status == "" {
		a.Status = domain.AppointmentScheduled
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.Appointment{}, err
	}
	s.notify(ctx, created, domain.EventAppointmentCreated, true)
	return created, nil
}

func (s *appointmentService) Update(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	if a.ID <= 0 {
		return domain.Appointment{}, fmt.Errorf("%w: 预约ID非法", errs.ErrInvalidParameter)
	}
	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return domain.Appointment{}, err
	}
	s.notify(ctx, updated, domain.EventAppointmentUpdated, false)
	return updated, nil
}

func (s *appointmentService) validate(a domain.Appointment) error {
	switch {
	case a.PatientID <= 0:
		return fmt.Errorf("%w: 患者ID非法", errs.ErrInvalidParameter)
	case a.ProviderID <= 0:
		return fmt.Errorf("%w: 医护人员ID非法", errs.ErrInvalidParameter)
	case strings.TrimSpace(a.Date) == "" || strings.TrimSpace(a.Time) == "":
		return fmt.Errorf("%w: 预约日期和时间不能为空", errs.ErrInvalidParameter)
	}
	return nil
}

// notify 预约已经写入，这里的任何失败都只记录日志
func (s *appointmentService) notify(ctx context.Context, a domain.Appointment, kind domain.EventKind, bookedByPatient bool) {
	patient, provider, err := findPair(ctx, s.users, a.PatientID, a.ProviderID)
	if err != nil {
		s.logger.Warn("查询预约相关用户失败，不发送通知",
			elog.Int64("appointmentId", a.ID),
			elog.FieldErr(err),
		)
		return
	}

	payload := domain.AppointmentPayload{
		AppointmentID:   a.ID,
		DoctorName:      provider.DisplayName(),
		PatientName:     patient.DisplayName(),
		Date:            a.Date,
		Time:            a.Time,
		Type:            a.Type,
		MeetingLink:     a.MeetingLink,
		Notes:           a.Notes,
		BookedByPatient: bookedByPatient,
	}
	recipient := patient
	if bookedByPatient {
		recipient = provider
	}

	evt := domain.NewAppointmentCreatedEvent(recipient, payload)
	if kind == domain.EventAppointmentUpdated {
		evt = domain.NewAppointmentUpdatedEvent(recipient, payload)
	}
	s.notifier.Notify(ctx, evt)
}
