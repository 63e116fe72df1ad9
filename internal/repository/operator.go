package repository

import (
	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OperatorRepository handles database operations for operators
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// Create creates a new operator
func (r *OperatorRepository) Create(operator *models.Operator) error {
	return r.db.Create(operator).Error
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(id uuid.UUID) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByIDsForUpdate retrieves operators by id with row locks held until the
// surrounding transaction commits. Rows are locked in ascending id order so
// concurrent assignments acquire locks in the same order.
func (r *OperatorRepository) GetByIDsForUpdate(ids []uuid.UUID) ([]models.Operator, error) {
	var operators []models.Operator
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&operators).Error
	if err != nil {
		return nil, err
	}
	return operators, nil
}

// GetAll retrieves all operators with pagination
func (r *OperatorRepository) GetAll(limit, offset int) ([]models.Operator, int64, error) {
	var operators []models.Operator
	var total int64

	if err := r.db.Model(&models.Operator{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&operators).Error
	if err != nil {
		return nil, 0, err
	}

	return operators, total, nil
}

// Update updates an operator
func (r *OperatorRepository) Update(operator *models.Operator) error {
	return r.db.Save(operator).Error
}

// Delete deletes an operator
func (r *OperatorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Operator{}, "id = ?", id).Error
}
