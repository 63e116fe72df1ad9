package repository

import (
	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetByExternalID(externalID string) (*models.Lead, error)
	FindByPhoneOrEmail(phone, email *string) (*models.Lead, error)
	GetAll(limit, offset int) ([]models.Lead, int64, error)
}

// SourceRepositoryInterface defines the interface for source repository operations
type SourceRepositoryInterface interface {
	Create(source *models.Source) error
	GetByID(id uuid.UUID) (*models.Source, error)
	GetByName(name string) (*models.Source, error)
	GetAll(limit, offset int) ([]models.Source, int64, error)
	Update(source *models.Source) error
	Delete(id uuid.UUID) error
}

// OperatorRepositoryInterface defines the interface for operator repository operations
type OperatorRepositoryInterface interface {
	Create(operator *models.Operator) error
	GetByID(id uuid.UUID) (*models.Operator, error)
	GetByIDsForUpdate(ids []uuid.UUID) ([]models.Operator, error)
	GetAll(limit, offset int) ([]models.Operator, int64, error)
	Update(operator *models.Operator) error
	Delete(id uuid.UUID) error
}

// OperatorSourceWeightRepositoryInterface defines the interface for weight repository operations
type OperatorSourceWeightRepositoryInterface interface {
	Upsert(operatorID, sourceID uuid.UUID, weight float64) (*models.OperatorSourceWeight, error)
	GetBySource(sourceID uuid.UUID) ([]models.OperatorSourceWeight, error)
	GetByOperator(operatorID uuid.UUID) ([]models.OperatorSourceWeight, error)
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetWithDetails(id uuid.UUID) (*models.Contact, error)
	GetAll(limit, offset int) ([]models.Contact, int64, error)
	GetByLeadID(leadID uuid.UUID) ([]models.Contact, error)
	GetByOperatorID(operatorID uuid.UUID) ([]models.Contact, error)
	GetBySourceID(sourceID uuid.UUID) ([]models.Contact, error)
	GetUnprocessed(limit, offset int) ([]models.Contact, int64, error)
	MarkProcessed(id uuid.UUID) (*models.Contact, error)
	CountUnfinishedForOperator(operatorID uuid.UUID) (int64, error)
}
