package repository

import (
	"context"
	"fmt"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

// DoctorRepository persists doctor registrations.
type DoctorRepository struct {
	DB *gorm.DB
}

// NewDoctorRepository creates a new DoctorRepository.
func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{DB: db}
}

func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.DB.WithContext(ctx).Order("did asc").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.DB.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

// FindByDept returns the first doctor of a department or ErrNotFound.
func (r *DoctorRepository) FindByDept(ctx context.Context, dept string) (*models.Doctor, error) {
	return r.findBy(ctx, "dept", dept)
}

// FindByName returns the first doctor with an exactly matching name or ErrNotFound.
func (r *DoctorRepository) FindByName(ctx context.Context, name string) (*models.Doctor, error) {
	return r.findBy(ctx, "doctorname", name)
}

func (r *DoctorRepository) findBy(ctx context.Context, column, value string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.DB.WithContext(ctx).Where(column+" = ?", value).First(&doctor).Error; err != nil {
		if err = translate(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("find doctor by %s: %w", column, err)
	}
	return &doctor, nil
}
