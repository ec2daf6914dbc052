package repository

import (
	"context"
	"database/sql"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository/dao"
)

type MedicationRepository interface {
	Create(ctx context.Context, m domain.Medication) (domain.Medication, error)
}

type medicationRepository struct {
	dao dao.MedicationDAO
}

func NewMedicationRepository(d dao.MedicationDAO) MedicationRepository {
	return &medicationRepository{dao: d}
}

func (r *medicationRepository) Create(ctx context.Context, m domain.Medication) (domain.Medication, error) {
	created, err := r.dao.Create(ctx, dao.Medication{
		PatientID:    m.PatientID,
		PrescriberID: m.PrescriberID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Frequency:    m.Frequency,
		StartDate:    m.StartDate,
		EndDate:      sql.NullString{String: m.EndDate, Valid: m.EndDate != ""},
		Instructions: sql.NullString{String: m.Instructions, Valid: m.Instructions != ""},
	})
	if err != nil {
		return domain.Medication{}, err
	}
	return domain.Medication{
		ID:           created.ID,
		PatientID:    created.PatientID,
		PrescriberID: created.PrescriberID,
		Name:         created.Name,
		Dosage:       created.Dosage,
		Frequency:    created.Frequency,
		StartDate:    created.StartDate,
		EndDate:      created.EndDate.String,
		Instructions: created.Instructions.String,
		Ctime:        created.Ctime,
		Utime:        created.Utime,
	}, nil
}
