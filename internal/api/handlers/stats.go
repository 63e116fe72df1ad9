package handlers

import (
	"net/http"

	"crm-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for load and backlog statistics
type StatsHandler struct {
	distribution service.DistributionServiceInterface
	contacts     service.ContactServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(distribution service.DistributionServiceInterface, contacts service.ContactServiceInterface) *StatsHandler {
	return &StatsHandler{distribution: distribution, contacts: contacts}
}

// GetOperatorLoadStats handles GET /api/v1/stats/operator-load
// @Summary Per-operator load statistics
// @Description Current unprocessed-contact count, max load and utilization percentage per operator
// @Tags stats
// @Produce json
// @Success 200 {array} service.OperatorLoadStat
// @Router /stats/operator-load [get]
func (h *StatsHandler) GetOperatorLoadStats(c *gin.Context) {
	stats, err := h.distribution.GetOperatorLoadStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get operator load stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUnprocessedContacts handles GET /api/v1/stats/unprocessed-contacts
// @Summary List unprocessed contacts
// @Tags stats
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.ContactListResponse
// @Router /stats/unprocessed-contacts [get]
func (h *StatsHandler) GetUnprocessedContacts(c *gin.Context) {
	page, pageSize := parsePagination(c)

	contacts, err := h.contacts.GetUnprocessed(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get unprocessed contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
