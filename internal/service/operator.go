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

// OperatorService handles business logic for operators and their
// per-source weights
type OperatorService struct {
	repo        repository.OperatorRepositoryInterface
	weightRepo  repository.OperatorSourceWeightRepositoryInterface
	sourceRepo  repository.SourceRepositoryInterface
	contactRepo repository.ContactRepositoryInterface
	validator   *validator.Validate
}

// NewOperatorService creates a new operator service
func NewOperatorService(
	repo repository.OperatorRepositoryInterface,
	weightRepo repository.OperatorSourceWeightRepositoryInterface,
	sourceRepo repository.SourceRepositoryInterface,
	contactRepo repository.ContactRepositoryInterface,
	validator *validator.Validate,
) *OperatorService {
	return &OperatorService{
		repo:        repo,
		weightRepo:  weightRepo,
		sourceRepo:  sourceRepo,
		contactRepo: contactRepo,
		validator:   validator,
	}
}

// CreateOperatorRequest represents the request to create an operator
type CreateOperatorRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	IsActive *bool  `json:"is_active,omitempty"`
	MaxLoad  *int   `json:"max_load,omitempty" validate:"omitempty,gte=0"`
}

// UpdateOperatorRequest represents the request to update an operator.
// Only the supplied fields are changed.
type UpdateOperatorRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	IsActive *bool   `json:"is_active,omitempty"`
	MaxLoad  *int    `json:"max_load,omitempty" validate:"omitempty,gte=0"`
}

// SetWeightRequest represents the request to set an operator's weight for a source
type SetWeightRequest struct {
	Weight float64 `json:"weight" validate:"gte=0"`
}

// OperatorResponse represents the response for operator operations
type OperatorResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
	MaxLoad  int       `json:"max_load"`
}

// OperatorListResponse represents a paginated list of operators
type OperatorListResponse struct {
	Operators []OperatorResponse `json:"operators"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// WeightResponse represents one configured (operator, source) weight
type WeightResponse struct {
	OperatorID uuid.UUID `json:"operator_id"`
	SourceID   uuid.UUID `json:"source_id"`
	Weight     float64   `json:"weight"`
}

// Create creates a new operator
func (s *OperatorService) Create(req *CreateOperatorRequest) (*OperatorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	operator := &models.Operator{
		Name:     req.Name,
		IsActive: true,
		MaxLoad:  10,
	}
	if req.IsActive != nil {
		operator.IsActive = *req.IsActive
	}
	if req.MaxLoad != nil {
		operator.MaxLoad = *req.MaxLoad
	}

	if err := s.repo.Create(operator); err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}

	return operatorToResponse(operator), nil
}

// GetByID retrieves an operator by ID
func (s *OperatorService) GetByID(id uuid.UUID) (*OperatorResponse, error) {
	operator, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	return operatorToResponse(operator), nil
}

// GetAll retrieves all operators with pagination
func (s *OperatorService) GetAll(page, pageSize int) (*OperatorListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	operators, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get operators: %w", err)
	}

	responses := make([]OperatorResponse, len(operators))
	for i, operator := range operators {
		responses[i] = *operatorToResponse(&operator)
	}

	return &OperatorListResponse{
		Operators: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies the supplied fields to an operator. Activation and max
// load reconfiguration take effect on the next assignment evaluation;
// already-assigned contacts are never rebalanced.
func (s *OperatorService) Update(id uuid.UUID, req *UpdateOperatorRequest) (*OperatorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	operator, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	if req.Name != nil {
		operator.Name = *req.Name
	}
	if req.IsActive != nil {
		operator.IsActive = *req.IsActive
	}
	if req.MaxLoad != nil {
		operator.MaxLoad = *req.MaxLoad
	}

	if err := s.repo.Update(operator); err != nil {
		return nil, fmt.Errorf("failed to update operator: %w", err)
	}

	return operatorToResponse(operator), nil
}

// Delete deletes an operator
func (s *OperatorService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOperatorNotFound
		}
		return fmt.Errorf("failed to get operator: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete operator: %w", err)
	}

	return nil
}

// SetSourceWeight upserts the operator's preference weight for a source
func (s *OperatorService) SetSourceWeight(operatorID, sourceID uuid.UUID, req *SetWeightRequest) (*WeightResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(operatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	if _, err := s.sourceRepo.GetByID(sourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	row, err := s.weightRepo.Upsert(operatorID, sourceID, req.Weight)
	if err != nil {
		return nil, fmt.Errorf("failed to set weight: %w", err)
	}

	return &WeightResponse{
		OperatorID: row.OperatorID,
		SourceID:   row.SourceID,
		Weight:     row.Weight,
	}, nil
}

// GetSourceWeights retrieves all configured weights for an operator
func (s *OperatorService) GetSourceWeights(operatorID uuid.UUID) ([]WeightResponse, error) {
	if _, err := s.repo.GetByID(operatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	rows, err := s.weightRepo.GetByOperator(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weights: %w", err)
	}

	responses := make([]WeightResponse, len(rows))
	for i, row := range rows {
		responses[i] = WeightResponse{
			OperatorID: row.OperatorID,
			SourceID:   row.SourceID,
			Weight:     row.Weight,
		}
	}
	return responses, nil
}

// GetContacts retrieves all contacts assigned to an operator
func (s *OperatorService) GetContacts(id uuid.UUID) ([]ContactResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	contacts, err := s.contactRepo.GetByOperatorID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get operator contacts: %w", err)
	}

	return contactsToResponses(contacts), nil
}

// operatorToResponse converts an operator model to response
func operatorToResponse(operator *models.Operator) *OperatorResponse {
	return &OperatorResponse{
		ID:       operator.ID,
		Name:     operator.Name,
		IsActive: operator.IsActive,
		MaxLoad:  operator.MaxLoad,
	}
}
