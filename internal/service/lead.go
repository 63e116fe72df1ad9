package service

import (
	"errors"
	"fmt"
	"time"

	"crm-distribution-backend/internal/database/models"
	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadService handles business logic for leads
type LeadService struct {
	repo        repository.LeadRepositoryInterface
	contactRepo repository.ContactRepositoryInterface
	validator   *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(repo repository.LeadRepositoryInterface, contactRepo repository.ContactRepositoryInterface, validator *validator.Validate) *LeadService {
	return &LeadService{
		repo:        repo,
		contactRepo: contactRepo,
		validator:   validator,
	}
}

// CreateLeadRequest represents the request to create a lead directly,
// bypassing identity resolution. At least one identifying field must be
// supplied.
type CreateLeadRequest struct {
	ExternalID *string `json:"external_id,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Name       *string `json:"name,omitempty"`
}

// LeadResponse represents the response for lead operations
type LeadResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID *string   `json:"external_id,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Name       *string   `json:"name,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new lead
func (s *LeadService) Create(req *CreateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.ExternalID == nil && req.Phone == nil && req.Email == nil && req.Name == nil {
		return nil, apperrors.NewValidationError("", "at least one of external_id, phone, email or name is required")
	}

	if req.ExternalID != nil {
		existing, err := s.repo.GetByExternalID(*req.ExternalID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing lead: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrLeadExists
		}
	}

	lead := &models.Lead{
		ExternalID: req.ExternalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Name:       req.Name,
	}
	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return leadToResponse(lead), nil
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return leadToResponse(lead), nil
}

// GetAll retrieves all leads with pagination
func (s *LeadService) GetAll(page, pageSize int) (*LeadListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	leads, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	responses := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = *leadToResponse(&lead)
	}

	return &LeadListResponse{
		Leads:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetContacts retrieves all contacts belonging to a lead
func (s *LeadService) GetContacts(id uuid.UUID) ([]ContactResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	contacts, err := s.contactRepo.GetByLeadID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead contacts: %w", err)
	}

	return contactsToResponses(contacts), nil
}

// leadToResponse converts a lead model to response
func leadToResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:         lead.ID,
		ExternalID: lead.ExternalID,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Name:       lead.Name,
		CreatedAt:  lead.CreatedAt.Format(time.RFC3339),
	}
}
