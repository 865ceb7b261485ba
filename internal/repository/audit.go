package repository

import (
	"context"
	"fmt"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

// AuditRepository reads the appointment audit log.
type AuditRepository struct {
	DB *gorm.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) List(ctx context.Context) ([]models.Trigr, error) {
	var entries []models.Trigr
	if err := r.DB.WithContext(ctx).Order("tid asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
