package repository

import (
	"context"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

// ProbeRepository checks that the database answers queries.
type ProbeRepository struct {
	DB *gorm.DB
}

// NewProbeRepository creates a new ProbeRepository.
func NewProbeRepository(db *gorm.DB) *ProbeRepository {
	return &ProbeRepository{DB: db}
}

// Ping runs a trivial query against the probe table.
func (r *ProbeRepository) Ping(ctx context.Context) error {
	var rows []models.Test
	return r.DB.WithContext(ctx).Limit(1).Find(&rows).Error
}
