package service

import (
	"errors"
	"fmt"
	"time"

	"crm-distribution-backend/internal/database/models"
	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService handles read and disposal operations for contacts.
// Registration of new contacts goes through the DistributionService.
type ContactService struct {
	repo repository.ContactRepositoryInterface
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface) *ContactService {
	return &ContactService{repo: repo}
}

// ContactResponse represents the response for contact operations. A nil
// OperatorID means the contact is queued and was never assigned.
type ContactResponse struct {
	ID          uuid.UUID  `json:"id"`
	LeadID      uuid.UUID  `json:"lead_id"`
	SourceID    uuid.UUID  `json:"source_id"`
	OperatorID  *uuid.UUID `json:"operator_id,omitempty"`
	Message     string     `json:"message,omitempty"`
	ContactData string     `json:"contact_data,omitempty"`
	IsProcessed bool       `json:"is_processed"`
	CreatedAt   string     `json:"created_at"`
}

// ContactDetailsResponse is a contact together with its related records
type ContactDetailsResponse struct {
	ContactResponse
	Lead     *LeadResponse     `json:"lead,omitempty"`
	Source   *SourceResponse   `json:"source,omitempty"`
	Operator *OperatorResponse `json:"operator,omitempty"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contactToResponse(contact), nil
}

// GetWithDetails retrieves a contact with its lead, source and operator
func (s *ContactService) GetWithDetails(id uuid.UUID) (*ContactDetailsResponse, error) {
	contact, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact details: %w", err)
	}

	resp := &ContactDetailsResponse{
		ContactResponse: *contactToResponse(contact),
		Lead:            leadToResponse(&contact.Lead),
		Source:          sourceToResponse(&contact.Source),
	}
	if contact.Operator != nil {
		resp.Operator = operatorToResponse(contact.Operator)
	}
	return resp, nil
}

// GetAll retrieves all contacts with pagination
func (s *ContactService) GetAll(page, pageSize int) (*ContactListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	contacts, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}

	return &ContactListResponse{
		Contacts: contactsToResponses(contacts),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetUnprocessed retrieves contacts awaiting disposal
func (s *ContactService) GetUnprocessed(page, pageSize int) (*ContactListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	contacts, total, err := s.repo.GetUnprocessed(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get unprocessed contacts: %w", err)
	}

	return &ContactListResponse{
		Contacts: contactsToResponses(contacts),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// MarkProcessed flips a contact's processed flag, freeing one slot of the
// assigned operator's load.
func (s *ContactService) MarkProcessed(id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact.IsProcessed {
		return nil, apperrors.ErrContactAlreadyProcessed
	}

	contact, err = s.repo.MarkProcessed(id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark contact processed: %w", err)
	}

	return contactToResponse(contact), nil
}

// contactToResponse converts a contact model to response
func contactToResponse(contact *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:          contact.ID,
		LeadID:      contact.LeadID,
		SourceID:    contact.SourceID,
		OperatorID:  contact.OperatorID,
		Message:     contact.Message,
		ContactData: contact.ContactData,
		IsProcessed: contact.IsProcessed,
		CreatedAt:   contact.CreatedAt.Format(time.RFC3339),
	}
}

func contactsToResponses(contacts []models.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = *contactToResponse(&contact)
	}
	return responses
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
