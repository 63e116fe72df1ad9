package repository

import (
	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetWithDetails retrieves a contact with its lead, source and operator preloaded
func (r *ContactRepository) GetWithDetails(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.
		Preload("Lead").
		Preload("Source").
		Preload("Operator").
		First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetAll retrieves all contacts with pagination
func (r *ContactRepository) GetAll(limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := r.db.Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// GetByLeadID retrieves all contacts for a lead
func (r *ContactRepository) GetByLeadID(leadID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("lead_id = ?", leadID).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByOperatorID retrieves all contacts assigned to an operator
func (r *ContactRepository) GetByOperatorID(operatorID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("operator_id = ?", operatorID).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetBySourceID retrieves all contacts that arrived through a source
func (r *ContactRepository) GetBySourceID(sourceID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("source_id = ?", sourceID).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetUnprocessed retrieves contacts that no operator has disposed of yet
func (r *ContactRepository) GetUnprocessed(limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	base := r.db.Model(&models.Contact{}).Where("is_processed = ?", false)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Where("is_processed = ?", false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// MarkProcessed flips the processed flag for a contact
func (r *ContactRepository) MarkProcessed(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}

	contact.IsProcessed = true
	if err := r.db.Save(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// CountUnfinishedForOperator computes an operator's current load: the
// number of contacts assigned to it that are not processed yet.
func (r *ContactRepository) CountUnfinishedForOperator(operatorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("operator_id = ? AND is_processed = ?", operatorID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
