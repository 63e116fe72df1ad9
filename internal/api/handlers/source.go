package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SourceHandler handles HTTP requests for sources
type SourceHandler struct {
	service service.SourceServiceInterface
}

// NewSourceHandler creates a new source handler
func NewSourceHandler(service service.SourceServiceInterface) *SourceHandler {
	return &SourceHandler{service: service}
}

// CreateSource handles POST /api/v1/sources
// @Summary Create a source
// @Tags sources
// @Accept json
// @Produce json
// @Param source body service.CreateSourceRequest true "Source data"
// @Success 201 {object} service.SourceResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Source already exists"
// @Router /sources [post]
func (h *SourceHandler) CreateSource(c *gin.Context) {
	var req service.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	source, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create source", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, source)
}

// ListSources handles GET /api/v1/sources
// @Summary List sources
// @Tags sources
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.SourceListResponse
// @Router /sources [get]
func (h *SourceHandler) ListSources(c *gin.Context) {
	page, pageSize := parsePagination(c)

	sources, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sources", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sources)
}

// GetSource handles GET /api/v1/sources/:id
// @Summary Get source by ID
// @Tags sources
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Success 200 {object} service.SourceResponse
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Router /sources/{id} [get]
func (h *SourceHandler) GetSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source ID: invalid UUID format"})
		return
	}

	source, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get source", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, source)
}

// UpdateSource handles PUT /api/v1/sources/:id
// @Summary Update a source
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Param source body service.UpdateSourceRequest true "Source data"
// @Success 200 {object} service.SourceResponse
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Router /sources/{id} [put]
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source ID: invalid UUID format"})
		return
	}

	var req service.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	source, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update source", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, source)
}

// DeleteSource handles DELETE /api/v1/sources/:id
// @Summary Delete a source
// @Tags sources
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Router /sources/{id} [delete]
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete source", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Source deleted successfully"})
}

// GetSourceContacts handles GET /api/v1/sources/:id/contacts
// @Summary List contacts that arrived through a source
// @Tags sources
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Success 200 {array} service.ContactResponse
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Router /sources/{id}/contacts [get]
func (h *SourceHandler) GetSourceContacts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source ID: invalid UUID format"})
		return
	}

	contacts, err := h.service.GetContacts(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get source contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
