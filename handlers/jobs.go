// File: handlers/jobs.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"tidyops/services/admin"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// dispatchError maps dispatcher failures to HTTP responses.
func dispatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrJobNotOwned):
		utils.JSONError(c, http.StatusNotFound, "Job not found", "")
	case errors.Is(err, admin.ErrCleanerUnavailable):
		utils.JSONError(c, http.StatusConflict, "Cleaner is not available for assignment", "")
	case errors.Is(err, admin.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Job status does not allow this operation", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Job operation failed", err.Error())
	}
}

// ListJobs returns every job for the admin's company, newest first.
func (hb *HandlerBundle) ListJobs(c *gin.Context) {
	jobs, err := hb.Jobs.GetByCompany(c.GetString("companyID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list jobs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob returns a single job, scoped to the admin's company.
func (hb *HandlerBundle) GetJob(c *gin.Context) {
	job, err := hb.Jobs.GetByID(c.Param("jobID"))
	if err != nil || job.CompanyID != c.GetString("companyID") {
		utils.JSONError(c, http.StatusNotFound, "Job not found", "")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ApproveJob accepts a pending booking.
func (hb *HandlerBundle) ApproveJob(c *gin.Context) {
	job, err := hb.Dispatch.ApproveJob(c.GetString("companyID"), c.Param("jobID"))
	if err != nil {
		dispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// AssignJob offers a job to a cleaner.
func (hb *HandlerBundle) AssignJob(c *gin.Context) {
	var input struct {
		CleanerID string `json:"cleanerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	job, err := hb.Dispatch.AssignJob(c.Request.Context(), c.GetString("companyID"), c.Param("jobID"), input.CleanerID)
	if err != nil {
		dispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// RescheduleJob moves a job to a new date and time.
func (hb *HandlerBundle) RescheduleJob(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"` // "2006-01-02"
		Time string `json:"time" binding:"required"` // "15:04"
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be formatted YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid time", "time must be formatted HH:MM")
		return
	}

	job, err := hb.Dispatch.RescheduleJob(c.GetString("companyID"), c.Param("jobID"), date, input.Time)
	if err != nil {
		dispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CancelJob cancels a job, marking paid jobs refunded.
func (hb *HandlerBundle) CancelJob(c *gin.Context) {
	job, err := hb.Dispatch.CancelJob(c.GetString("companyID"), c.Param("jobID"))
	if err != nil {
		dispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// MarkJobPaid records an out-of-band payment against a job.
func (hb *HandlerBundle) MarkJobPaid(c *gin.Context) {
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	job, err := hb.Dispatch.MarkJobPaid(c.GetString("companyID"), c.Param("jobID"), input.Method)
	if err != nil {
		dispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
