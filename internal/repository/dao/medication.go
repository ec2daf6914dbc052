package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
)

// Medication 处方表
type Medication struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	PatientID    int64          `gorm:"type:BIGINT;index:idx_patient_id"`
	PrescriberID int64          `gorm:"type:BIGINT;comment:'开药的医生ID'"`
	Name         string         `gorm:"type:VARCHAR(128)"`
	Dosage       string         `gorm:"type:VARCHAR(64)"`
	Frequency    string         `gorm:"type:VARCHAR(64)"`
	StartDate    string         `gorm:"type:VARCHAR(32)"`
	EndDate      sql.NullString `gorm:"type:VARCHAR(32);comment:'长期用药时为空'"`
	Instructions sql.NullString `gorm:"type:TEXT"`
	Ctime        int64
	Utime        int64
}

func (Medication) TableName() string {
	return "medications"
}

type MedicationDAO interface {
	Create(ctx context.Context, m Medication) (Medication, error)
}

type medicationDAO struct {
	db *egorm.Component
}

func NewMedicationDAO(db *egorm.Component) MedicationDAO {
	return &medicationDAO{db: db}
}

func (d *medicationDAO) Create(ctx context.Context, m Medication) (Medication, error) {
	now := time.Now().UnixMilli()
	m.Ctime = now
	m.Utime = now
	err := d.db.WithContext(ctx).Create(&m).Error
	return m, err
}
