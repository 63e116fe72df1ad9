package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	service service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{service: service}
}

// CreateLead handles POST /api/v1/leads
// @Summary Create a lead directly
// @Description Create a lead without going through contact registration; identity resolution is not applied
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} service.LeadResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Lead already exists"
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lead, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeadExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/leads
// @Summary List leads
// @Tags leads
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.LeadListResponse
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, pageSize := parsePagination(c)

	leads, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leads", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead handles GET /api/v1/leads/:id
// @Summary Get lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} service.LeadResponse
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID: invalid UUID format"})
		return
	}

	lead, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lead", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// GetLeadContacts handles GET /api/v1/leads/:id/contacts
// @Summary List a lead's contacts
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {array} service.ContactResponse
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Router /leads/{id}/contacts [get]
func (h *LeadHandler) GetLeadContacts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID: invalid UUID format"})
		return
	}

	contacts, err := h.service.GetContacts(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lead contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
