package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhartmann/roster-api-go/pkg/models"
	"github.com/mhartmann/roster-api-go/pkg/scheduler"
)

// ValidateInput checks a plan request without generating anything
func (h *Handler) ValidateInput(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(req.Participants) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one participant is required",
		})
		return
	}

	participants, err := h.buildParticipants(req.Participants)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	// Engine construction runs the full shape validation: duplicate names,
	// negative caps, out-of-catalog slots.
	if _, err := scheduler.New(h.Catalog, participants); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	totalBreadth := 0
	for _, p := range participants {
		totalBreadth += p.AvailableCount(1)
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"participant_count": len(participants),
			"slot_count":        len(h.Catalog.Slots()),
			"total_breadth":     totalBreadth,
		},
	})
}
