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

type AppointmentRepository interface {
	Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	Update(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (domain.Appointment, error)
}

type appointmentRepository struct {
	dao dao.AppointmentDAO
}

func NewAppointmentRepository(d dao.AppointmentDAO) AppointmentRepository {
	return &appointmentRepository{dao: d}
}

func (r *appointmentRepository) Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	created, err := r.dao.Create(ctx, r.toEntity(a))
	if err != nil {
		return domain.Appointment{}, err
	}
	return r.toDomain(created), nil
}

func (r *appointmentRepository) Update(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	updated, err := r.dao.Update(ctx, r.toEntity(a))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Appointment{}, fmt.Errorf("%w: id = %d", errs.ErrAppointmentNotFound, a.ID)
		}
		return domain.Appointment{}, err
	}
	return r.toDomain(updated), nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (domain.Appointment, error) {
	a, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Appointment{}, fmt.Errorf("%w: id = %d", errs.ErrAppointmentNotFound, id)
		}
		return domain.Appointment{}, err
	}
	return r.toDomain(a), nil
}

func (r *appointmentRepository) toEntity(a domain.Appointment) dao.Appointment {
	return dao.Appointment{
		ID:          a.ID,
		PatientID:   a.PatientID,
		ProviderID:  a.ProviderID,
		Date:        a.Date,
		Time:        a.Time,
		Type:        a.Type,
		MeetingLink: sql.NullString{String: a.MeetingLink, Valid: a.MeetingLink != ""},
		Notes:       sql.NullString{String: a.Notes, Valid: a.Notes != ""},
		Status:      string(a.Status),
	}
}

func (r *appointmentRepository) toDomain(a dao.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:          a.ID,
		PatientID:   a.PatientID,
		ProviderID:  a.ProviderID,
		Date:        a.Date,
		Time:        a.Time,
		Type:        a.Type,
		MeetingLink: a.MeetingLink.String,
		Notes:       a.Notes.String,
		Status:      domain.AppointmentStatus(a.Status),
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}
