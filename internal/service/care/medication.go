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

// MedicationService 处方
type MedicationService interface {
	// Prescribe 医生开药，写入成功后通知患者
	Prescribe(ctx context.Context, patientID, prescriberID int64, m domain.Medication) (domain.Medication, error)
}

type medicationService struct {
	repo     repository.MedicationRepository
	users    repository.UserRepository
	notifier dispatcher.Notifier
	logger   *elog.Component
}

func NewMedicationService(repo repository.MedicationRepository, users repository.UserRepository,
	notifier dispatcher.Notifier) MedicationService {
	return &medicationService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   elog.DefaultLogger,
	}
}

func (s *medicationService) Prescribe(ctx context.Context, patientID, prescriberID int64, m domain.Medication) (domain.Medication, error) {
	if patientID <= 0 || prescriberID <= 0 {
		return domain.Medication{}, fmt.Errorf("%w: 患者或医生ID非法", errs.ErrInvalidParameter)
	}
	if strings.TrimSpace(m.Name) == "" {
		return domain.Medication{}, fmt.Errorf("%w: 药品名称不能为空", errs.ErrInvalidParameter)
	}
	m.PatientID = patientID
	m.PrescriberID = prescriberID

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return domain.Medication{}, err
	}

	patient, prescriber, err := findPair(ctx, s.users, patientID, prescriberID)
	if err != nil {
		s.logger.Warn("查询处方相关用户失败，不发送通知",
			elog.Int64("medicationId", created.ID),
			elog.FieldErr(err),
		)
		return created, nil
	}
	s.notifier.Notify(ctx, domain.NewMedicationPrescribedEvent(patient, domain.MedicationPayload{
		Name:           created.Name,
		Dosage:         created.Dosage,
		Frequency:      created.Frequency,
		StartDate:      created.StartDate,
		EndDate:        created.EndDate,
		PrescriberName: prescriber.DisplayName(),
	}))
	return created, nil
}
