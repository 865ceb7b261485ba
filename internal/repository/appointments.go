package repository

import (
	"context"
	"fmt"
	"time"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

// AppointmentRepository persists booked appointments. With Audit set, every
// insert, update and delete also writes a Trigr row in the same transaction.
type AppointmentRepository struct {
	DB    *gorm.DB
	Audit bool
	Now   func() time.Time
}

// NewAppointmentRepository creates a new AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB, audit bool) *AppointmentRepository {
	return &AppointmentRepository{DB: db, Audit: audit, Now: time.Now}
}

// List returns every appointment in booking order.
func (r *AppointmentRepository) List(ctx context.Context) ([]models.Patient, error) {
	var appointments []models.Patient
	if err := r.DB.WithContext(ctx).Order("pid asc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// ListByEmail returns the appointments booked under email.
func (r *AppointmentRepository) ListByEmail(ctx context.Context, email string) ([]models.Patient, error) {
	var appointments []models.Patient
	if err := r.DB.WithContext(ctx).Where("email = ?", email).Order("pid asc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", email, err)
	}
	return appointments, nil
}

// FindByID returns the appointment with primary key pid or ErrNotFound.
func (r *AppointmentRepository) FindByID(ctx context.Context, pid uint) (*models.Patient, error) {
	var appointment models.Patient
	if err := r.DB.WithContext(ctx).First(&appointment, pid).Error; err != nil {
		if err = translate(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("find appointment %d: %w", pid, err)
	}
	return &appointment, nil
}

// Create inserts appointment and sets its PID.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Patient) error {
	err := r.write(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(appointment).Error; err != nil {
			return err
		}
		return r.record(tx, *appointment, models.ActionInserted)
	})
	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

// Update overwrites every editable column of the row keyed by appointment.PID.
// Empty strings are written as-is.
func (r *AppointmentRepository) Update(ctx context.Context, appointment models.Patient) error {
	err := r.write(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&models.Patient{}).Where("pid = ?", appointment.PID).Updates(map[string]interface{}{
			"email":   appointment.Email,
			"name":    appointment.Name,
			"gender":  appointment.Gender,
			"slot":    appointment.Slot,
			"disease": appointment.Disease,
			"time":    appointment.Time,
			"date":    appointment.Date,
			"dept":    appointment.Dept,
			"number":  appointment.Number,
		}).Error
		if err != nil {
			return err
		}
		return r.record(tx, appointment, models.ActionUpdated)
	})
	if err != nil {
		return fmt.Errorf("update appointment %d: %w", appointment.PID, err)
	}
	return nil
}

// Delete removes the row keyed by appointment.PID.
func (r *AppointmentRepository) Delete(ctx context.Context, appointment models.Patient) error {
	err := r.write(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Patient{}, appointment.PID).Error; err != nil {
			return err
		}
		return r.record(tx, appointment, models.ActionDeleted)
	})
	if err != nil {
		return fmt.Errorf("delete appointment %d: %w", appointment.PID, err)
	}
	return nil
}

// write runs fn in an explicit transaction only when audit rows must be
// committed together with the change.
func (r *AppointmentRepository) write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db := r.DB.WithContext(ctx)
	if !r.Audit {
		return fn(db)
	}
	return db.Transaction(fn)
}

func (r *AppointmentRepository) record(tx *gorm.DB, appointment models.Patient, action string) error {
	if !r.Audit {
		return nil
	}
	entry := models.NewTrigr(appointment, action, r.Now())
	return tx.Create(&entry).Error
}
