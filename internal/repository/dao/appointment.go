package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// Appointment 预约表
type Appointment struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;comment:'预约ID'"`
	PatientID   int64          `gorm:"type:BIGINT;index:idx_patient_id;comment:'患者（孕产妇）ID'"`
	ProviderID  int64          `gorm:"type:BIGINT;index:idx_provider_id;comment:'医生/助产士ID'"`
	Date        string         `gorm:"type:VARCHAR(32);comment:'预约日期，按录入格式保存'"`
	Time        string         `gorm:"type:VARCHAR(32);comment:'预约时间'"`
	Type        string         `gorm:"type:VARCHAR(32);comment:'预约类型，如 video/in-person'"`
	MeetingLink sql.NullString `gorm:"type:VARCHAR(512);comment:'视频会议链接'"`
	Notes       sql.NullString `gorm:"type:TEXT"`
	Status      string         `gorm:"type:VARCHAR(16);DEFAULT:'scheduled'"`
	Ctime       int64
	Utime       int64
}

func (Appointment) TableName() string {
	return "appointments"
}

type AppointmentDAO interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	FindByID(ctx context.Context, id int64) (Appointment, error)
}

type appointmentDAO struct {
	db *egorm.Component
}

func NewAppointmentDAO(db *egorm.Component) AppointmentDAO {
	return &appointmentDAO{db: db}
}

func (d *appointmentDAO) Create(ctx context.Context, a Appointment) (Appointment, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Create(&a).Error
	return a, err
}

// Update 更新可修改的字段并返回更新后的记录
func (d *appointmentDAO) Update(ctx context.Context, a Appointment) (Appointment, error) {
	var res Appointment
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Appointment{}).
			Where("id = ?", a.ID).
			Updates(map[string]any{
				"date":         a.Date,
				"time":         a.Time,
				"type":         a.Type,
				"meeting_link": a.MeetingLink,
				"notes":        a.Notes,
				"status":       a.Status,
				"utime":        time.Now().UnixMilli(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", a.ID).First(&res).Error
	})
	return res, err
}

func (d *appointmentDAO) FindByID(ctx context.Context, id int64) (Appointment, error) {
	var a Appointment
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}
