package service

import (
	"errors"
	"fmt"

	"crm-distribution-backend/internal/database/models"
	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceService handles business logic for sources
type SourceService struct {
	repo        repository.SourceRepositoryInterface
	contactRepo repository.ContactRepositoryInterface
	validator   *validator.Validate
}

// NewSourceService creates a new source service
func NewSourceService(repo repository.SourceRepositoryInterface, contactRepo repository.ContactRepositoryInterface, validator *validator.Validate) *SourceService {
	return &SourceService{
		repo:        repo,
		contactRepo: contactRepo,
		validator:   validator,
	}
}

// CreateSourceRequest represents the request to create a source
type CreateSourceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// UpdateSourceRequest represents the request to update a source
type UpdateSourceRequest struct {
	Description string `json:"description,omitempty" validate:"max=500"`
}

// SourceResponse represents the response for source operations
type SourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// SourceListResponse represents a paginated list of sources
type SourceListResponse struct {
	Sources  []SourceResponse `json:"sources"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new source
func (s *SourceService) Create(req *CreateSourceRequest) (*SourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing source: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSourceExists
	}

	source := &models.Source{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(source); err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	return sourceToResponse(source), nil
}

// GetByID retrieves a source by ID
func (s *SourceService) GetByID(id uuid.UUID) (*SourceResponse, error) {
	source, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return sourceToResponse(source), nil
}

// GetAll retrieves all sources with pagination
func (s *SourceService) GetAll(page, pageSize int) (*SourceListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	sources, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}

	responses := make([]SourceResponse, len(sources))
	for i, source := range sources {
		responses[i] = *sourceToResponse(&source)
	}

	return &SourceListResponse{
		Sources:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a source's description
func (s *SourceService) Update(id uuid.UUID, req *UpdateSourceRequest) (*SourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	source, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	source.Description = req.Description
	if err := s.repo.Update(source); err != nil {
		return nil, fmt.Errorf("failed to update source: %w", err)
	}

	return sourceToResponse(source), nil
}

// Delete deletes a source
func (s *SourceService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSourceNotFound
		}
		return fmt.Errorf("failed to get source: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}

	return nil
}

// GetContacts retrieves all contacts that arrived through a source
func (s *SourceService) GetContacts(id uuid.UUID) ([]ContactResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	contacts, err := s.contactRepo.GetBySourceID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get source contacts: %w", err)
	}

	return contactsToResponses(contacts), nil
}

// sourceToResponse converts a source model to response
func sourceToResponse(source *models.Source) *SourceResponse {
	return &SourceResponse{
		ID:          source.ID,
		Name:        source.Name,
		Description: source.Description,
	}
}
