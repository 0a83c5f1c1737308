// File: handlers/pricing.go
package handlers

import (
	"net/http"

	"tidyops/models"
	"tidyops/services/pricing"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// EstimatePrice computes a one-shot price for a draft without creating
// a session. The widget uses this for its live estimate display.
func (hb *HandlerBundle) EstimatePrice(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	breakdown, err := hb.Pricing.Quote(&draft)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute price", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pricing":           breakdown,
		"estimatedDuration": pricing.EstimateDuration(draft.Service),
	})
}
