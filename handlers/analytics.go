// File: handlers/analytics.go
package handlers

import (
	"net/http"

	"tidyops/models"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// parseFilter validates the ?filter= query parameter, defaulting to the
// month view.
func parseFilter(c *gin.Context) (models.TimeFilter, bool) {
	raw := c.DefaultQuery("filter", string(models.FilterMonth))
	switch f := models.TimeFilter(raw); f {
	case models.FilterDay, models.FilterWeek, models.FilterMonth,
		models.FilterQuarter, models.FilterYear, models.FilterAll:
		return f, true
	}
	utils.JSONError(c, http.StatusBadRequest, "invalid filter",
		"filter must be one of: day, week, month, quarter, year, all")
	return "", false
}

// GetAnalyticsOverview returns the summary metric cards.
func (hb *HandlerBundle) GetAnalyticsOverview(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	metrics, err := hb.Analytics.Overview(c.GetString("companyID"), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetAnalyticsSeries returns gap-free chart points for the window.
func (hb *HandlerBundle) GetAnalyticsSeries(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	points, err := hb.Analytics.TimeSeries(c.GetString("companyID"), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GetAnalyticsMonthly returns the month-by-month history table.
func (hb *HandlerBundle) GetAnalyticsMonthly(c *gin.Context) {
	rows, err := hb.Analytics.Monthly(c.GetString("companyID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": rows})
}

// GetAnalyticsRevenue returns the paid/pending revenue split.
func (hb *HandlerBundle) GetAnalyticsRevenue(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	breakdown, err := hb.Analytics.Revenue(c.GetString("companyID"), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// RefreshAnalytics forces a recompute of the company's cached metrics.
func (hb *HandlerBundle) RefreshAnalytics(c *gin.Context) {
	if err := hb.Analytics.RefreshCompany(c.GetString("companyID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to refresh analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
