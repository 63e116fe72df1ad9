package repository

import (
	"errors"

	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperatorSourceWeightRepository handles database operations for per-source operator weights
type OperatorSourceWeightRepository struct {
	db *gorm.DB
}

// NewOperatorSourceWeightRepository creates a new weight repository
func NewOperatorSourceWeightRepository(db *gorm.DB) *OperatorSourceWeightRepository {
	return &OperatorSourceWeightRepository{db: db}
}

// Upsert sets the weight for an (operator, source) pair, creating the row
// if it does not exist yet.
func (r *OperatorSourceWeightRepository) Upsert(operatorID, sourceID uuid.UUID, weight float64) (*models.OperatorSourceWeight, error) {
	var row models.OperatorSourceWeight
	err := r.db.First(&row, "operator_id = ? AND source_id = ?", operatorID, sourceID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		row = models.OperatorSourceWeight{
			OperatorID: operatorID,
			SourceID:   sourceID,
			Weight:     weight,
		}
		if err := r.db.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}

	row.Weight = weight
	if err := r.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetBySource retrieves all weight rows for a source with their operators preloaded
func (r *OperatorSourceWeightRepository) GetBySource(sourceID uuid.UUID) ([]models.OperatorSourceWeight, error) {
	var rows []models.OperatorSourceWeight
	err := r.db.
		Preload("Operator").
		Where("source_id = ?", sourceID).
		Order("operator_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByOperator retrieves all weight rows configured for an operator
func (r *OperatorSourceWeightRepository) GetByOperator(operatorID uuid.UUID) ([]models.OperatorSourceWeight, error) {
	var rows []models.OperatorSourceWeight
	err := r.db.
		Preload("Source").
		Where("operator_id = ?", operatorID).
		Order("source_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
