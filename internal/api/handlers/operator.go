package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OperatorHandler handles HTTP requests for operators and their source weights
type OperatorHandler struct {
	service service.OperatorServiceInterface
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(service service.OperatorServiceInterface) *OperatorHandler {
	return &OperatorHandler{service: service}
}

// CreateOperator handles POST /api/v1/operators
// @Summary Create an operator
// @Tags operators
// @Accept json
// @Produce json
// @Param operator body service.CreateOperatorRequest true "Operator data"
// @Success 201 {object} service.OperatorResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /operators [post]
func (h *OperatorHandler) CreateOperator(c *gin.Context) {
	var req service.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	operator, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operator", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, operator)
}

// ListOperators handles GET /api/v1/operators
// @Summary List operators
// @Tags operators
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.OperatorListResponse
// @Router /operators [get]
func (h *OperatorHandler) ListOperators(c *gin.Context) {
	page, pageSize := parsePagination(c)

	operators, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list operators", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, operators)
}

// GetOperator handles GET /api/v1/operators/:id
// @Summary Get operator by ID
// @Tags operators
// @Produce json
// @Param id path string true "Operator ID (UUID)"
// @Success 200 {object} service.OperatorResponse
// @Failure 404 {object} map[string]interface{} "Operator not found"
// @Router /operators/{id} [get]
func (h *OperatorHandler) GetOperator(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID: invalid UUID format"})
		return
	}

	operator, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get operator", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, operator)
}

// UpdateOperator handles PUT /api/v1/operators/:id
// @Summary Update an operator
// @Description Patch the supplied fields only. Deactivation and capacity changes affect future assignments; existing assignments are untouched.
// @Tags operators
// @Accept json
// @Produce json
// @Param id path string true "Operator ID (UUID)"
// @Param operator body service.UpdateOperatorRequest true "Operator data"
// @Success 200 {object} service.OperatorResponse
// @Failure 404 {object} map[string]interface{} "Operator not found"
// @Router /operators/{id} [put]
func (h *OperatorHandler) UpdateOperator(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID: invalid UUID format"})
		return
	}

	var req service.UpdateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	operator, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update operator", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, operator)
}

// DeleteOperator handles DELETE /api/v1/operators/:id
// @Summary Delete an operator
// @Tags operators
// @Produce json
// @Param id path string true "Operator ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Operator not found"
// @Router /operators/{id} [delete]
func (h *OperatorHandler) DeleteOperator(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrOperatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete operator", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Operator deleted successfully"})
}

// SetOperatorWeight handles PUT /api/v1/operators/:id/sources/:sourceId/weight
// @Summary Set an operator's weight for a source
// @Description Upsert the preference weight used for weighted selection of contacts from this source
// @Tags operators
// @Accept json
// @Produce json
// @Param id path string true "Operator ID (UUID)"
// @Param sourceId path string true "Source ID (UUID)"
// @Param weight body service.SetWeightRequest true "Weight"
// @Success 200 {object} service.WeightResponse
// @Failure 404 {object} map[string]interface{} "Operator or source not found"
// @Router /operators/{id}/sources/{sourceId}/weight [put]
func (h *OperatorHandler) SetOperatorWeight(c *gin.Context) {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID: invalid UUID format"})
		return
	}
	sourceID, err := uuid.Parse(c.Param("sourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source ID: invalid UUID format"})
		return
	}

	var req service.SetWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	weight, err := h.service.SetSourceWeight(operatorID, sourceID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set weight", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, weight)
}

// GetOperatorWeights handles GET /api/v1/operators/:id/weights
// @Summary List an operator's configured source weights
// @Tags operators
// @Produce json
// @Param id path string true "Operator ID (UUID)"
// @Success 200 {array} service.WeightResponse
// @Failure 404 {object} map[string]interface{} "Operator not found"
// @Router /operators/{id}/weights [get]
func (h *OperatorHandler) GetOperatorWeights(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID: invalid UUID format"})
		return
	}

	weights, err := h.service.GetSourceWeights(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get weights", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, weights)
}

// GetOperatorContacts handles GET /api/v1/operators/:id/contacts
// @Summary List contacts assigned to an operator
// @Tags operators
// @Produce json
// @Param id path string true "Operator ID (UUID)"
// @Success 200 {array} service.ContactResponse
// @Failure 404 {object} map[string]interface{} "Operator not found"
// @Router /operators/{id}/contacts [get]
func (h *OperatorHandler) GetOperatorContacts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID: invalid UUID format"})
		return
	}

	contacts, err := h.service.GetContacts(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get operator contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
