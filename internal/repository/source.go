package repository

import (
	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceRepository handles database operations for sources
type SourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// Create creates a new source
func (r *SourceRepository) Create(source *models.Source) error {
	return r.db.Create(source).Error
}

// GetByID retrieves a source by ID
func (r *SourceRepository) GetByID(id uuid.UUID) (*models.Source, error) {
	var source models.Source
	err := r.db.First(&source, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetByName retrieves a source by name
func (r *SourceRepository) GetByName(name string) (*models.Source, error) {
	var source models.Source
	err := r.db.First(&source, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetAll retrieves all sources with pagination
func (r *SourceRepository) GetAll(limit, offset int) ([]models.Source, int64, error) {
	var sources []models.Source
	var total int64

	if err := r.db.Model(&models.Source{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&sources).Error
	if err != nil {
		return nil, 0, err
	}

	return sources, total, nil
}

// Update updates a source
func (r *SourceRepository) Update(source *models.Source) error {
	return r.db.Save(source).Error
}

// Delete deletes a source
func (r *SourceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Source{}, "id = ?", id).Error
}
