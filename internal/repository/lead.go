package repository

import (
	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByExternalID retrieves a lead by its external system id
func (r *LeadRepository) GetByExternalID(externalID string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "external_id = ?", externalID).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByPhoneOrEmail retrieves the oldest lead matching the given phone OR
// email. Only the predicates for supplied hints are applied; with neither
// hint the lookup reports not found.
func (r *LeadRepository) FindByPhoneOrEmail(phone, email *string) (*models.Lead, error) {
	query := r.db.Model(&models.Lead{})
	switch {
	case phone != nil && email != nil:
		query = query.Where("phone = ? OR email = ?", *phone, *email)
	case phone != nil:
		query = query.Where("phone = ?", *phone)
	case email != nil:
		query = query.Where("email = ?", *email)
	default:
		return nil, gorm.ErrRecordNotFound
	}

	var lead models.Lead
	err := query.Order("created_at ASC, id ASC").First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves all leads with pagination
func (r *LeadRepository) GetAll(limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}
