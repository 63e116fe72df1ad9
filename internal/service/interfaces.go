package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	Create(req *CreateLeadRequest) (*LeadResponse, error)
	GetByID(id uuid.UUID) (*LeadResponse, error)
	GetAll(page, pageSize int) (*LeadListResponse, error)
	GetContacts(id uuid.UUID) ([]ContactResponse, error)
}

// SourceServiceInterface defines the interface for source service
type SourceServiceInterface interface {
	Create(req *CreateSourceRequest) (*SourceResponse, error)
	GetByID(id uuid.UUID) (*SourceResponse, error)
	GetAll(page, pageSize int) (*SourceListResponse, error)
	Update(id uuid.UUID, req *UpdateSourceRequest) (*SourceResponse, error)
	Delete(id uuid.UUID) error
	GetContacts(id uuid.UUID) ([]ContactResponse, error)
}

// OperatorServiceInterface defines the interface for operator service
type OperatorServiceInterface interface {
	Create(req *CreateOperatorRequest) (*OperatorResponse, error)
	GetByID(id uuid.UUID) (*OperatorResponse, error)
	GetAll(page, pageSize int) (*OperatorListResponse, error)
	Update(id uuid.UUID, req *UpdateOperatorRequest) (*OperatorResponse, error)
	Delete(id uuid.UUID) error
	SetSourceWeight(operatorID, sourceID uuid.UUID, req *SetWeightRequest) (*WeightResponse, error)
	GetSourceWeights(operatorID uuid.UUID) ([]WeightResponse, error)
	GetContacts(id uuid.UUID) ([]ContactResponse, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	GetByID(id uuid.UUID) (*ContactResponse, error)
	GetWithDetails(id uuid.UUID) (*ContactDetailsResponse, error)
	GetAll(page, pageSize int) (*ContactListResponse, error)
	GetUnprocessed(page, pageSize int) (*ContactListResponse, error)
	MarkProcessed(id uuid.UUID) (*ContactResponse, error)
}

// DistributionServiceInterface defines the interface for the assignment engine
type DistributionServiceInterface interface {
	RegisterContact(ctx context.Context, req *ContactRegistrationRequest) (*ContactResponse, error)
	GetOperatorLoadStats() ([]OperatorLoadStat, error)
}
