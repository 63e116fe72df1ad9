package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for contacts, including the
// registration endpoint that drives the assignment engine
type ContactHandler struct {
	service      service.ContactServiceInterface
	distribution service.DistributionServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface, distribution service.DistributionServiceInterface) *ContactHandler {
	return &ContactHandler{service: service, distribution: distribution}
}

// RegisterContact handles POST /api/v1/contacts/register
// @Summary Register an inbound contact
// @Description Resolve the customer identity, select an operator by capacity and source weights, and persist the contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.ContactRegistrationRequest true "Contact registration data"
// @Success 201 {object} service.ContactResponse "Registered contact, operator_id absent when queued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Failure 503 {object} map[string]interface{} "Assignment kept conflicting, retry later"
// @Router /contacts/register [post]
func (h *ContactHandler) RegisterContact(c *gin.Context) {
	var req service.ContactRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.distribution.RegisterContact(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsTransient(err):
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Registration conflicted, please retry", "details": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register contact", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContacts handles GET /api/v1/contacts
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.ContactListResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	page, pageSize := parsePagination(c)

	contacts, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact handles GET /api/v1/contacts/:id
// @Summary Get contact with details
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactDetailsResponse
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	contact, err := h.service.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// MarkContactProcessed handles POST /api/v1/contacts/:id/process
// @Summary Mark a contact as processed
// @Description Flips the processed flag, freeing one slot of the assigned operator's load
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 409 {object} map[string]interface{} "Contact already processed"
// @Router /contacts/{id}/process [post]
func (h *ContactHandler) MarkContactProcessed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	contact, err := h.service.MarkProcessed(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrContactAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark contact processed", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
