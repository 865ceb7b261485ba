package handlers

import (
	"context"

	"hospital-management-server/internal/models"
)

// UserStore is the account persistence the auth handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// DoctorStore is the doctor persistence used by registration, booking and search.
type DoctorStore interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	FindByDept(ctx context.Context, dept string) (*models.Doctor, error)
	FindByName(ctx context.Context, name string) (*models.Doctor, error)
}

// AppointmentStore is the appointment persistence.
type AppointmentStore interface {
	List(ctx context.Context) ([]models.Patient, error)
	ListByEmail(ctx context.Context, email string) ([]models.Patient, error)
	FindByID(ctx context.Context, pid uint) (*models.Patient, error)
	Create(ctx context.Context, appointment *models.Patient) error
	Update(ctx context.Context, appointment models.Patient) error
	Delete(ctx context.Context, appointment models.Patient) error
}

// AuditStore reads audit-log entries.
type AuditStore interface {
	List(ctx context.Context) ([]models.Trigr, error)
}

// Pinger checks database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
