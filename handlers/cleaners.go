// File: handlers/cleaners.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"tidyops/services/cleaner"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// cleanerError maps cleaner-service failures to HTTP responses.
func cleanerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cleaner.ErrNotAssigned):
		utils.JSONError(c, http.StatusNotFound, "Job not found", "")
	case errors.Is(err, cleaner.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Job status does not allow this operation", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Job operation failed", err.Error())
	}
}

// RegisterCleaner onboards a cleaner under the admin's company.
func (hb *HandlerBundle) RegisterCleaner(c *gin.Context) {
	var input struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone" binding:"required"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.CleanerSvc.Register(c.GetString("companyID"),
		input.FirstName, input.LastName, input.Email, input.Phone, input.Password)
	if err != nil {
		if errors.Is(err, cleaner.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "A cleaner with this email already exists", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register cleaner", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListCleaners returns the admin company's roster.
func (hb *HandlerBundle) ListCleaners(c *gin.Context) {
	cleaners, err := hb.Cleaners.GetByCompany(c.GetString("companyID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list cleaners", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleaners": cleaners})
}

// AuthenticateCleaner signs a cleaner in from the field app.
func (hb *HandlerBundle) AuthenticateCleaner(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	account, token, err := hb.CleanerSvc.SignIn(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, cleaner.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
		case errors.Is(err, cleaner.ErrAccountInactive):
			utils.JSONError(c, http.StatusForbidden, "This account has been deactivated", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to sign in", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleaner": account, "token": token})
}

// RevokeCleanerToken signs the calling cleaner out.
func (hb *HandlerBundle) RevokeCleanerToken(c *gin.Context) {
	if err := hb.CleanerSvc.SignOut(c.GetString("cleanerID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// RegisterCleanerDevice stores the app's push token.
func (hb *HandlerBundle) RegisterCleanerDevice(c *gin.Context) {
	var input struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := hb.CleanerSvc.RegisterDevice(c.GetString("cleanerID"), input.FCMToken); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register device", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}

// ListOfferedJobs returns jobs waiting for this cleaner's acceptance.
func (hb *HandlerBundle) ListOfferedJobs(c *gin.Context) {
	jobs, err := hb.CleanerSvc.OfferedJobs(c.GetString("cleanerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list offered jobs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ListScheduleJobs returns the cleaner's accepted and in-progress work.
func (hb *HandlerBundle) ListScheduleJobs(c *gin.Context) {
	jobs, err := hb.CleanerSvc.ScheduleJobs(c.GetString("cleanerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ListCompletedJobs returns the cleaner's finished work.
func (hb *HandlerBundle) ListCompletedJobs(c *gin.Context) {
	jobs, err := hb.CleanerSvc.CompletedJobs(c.GetString("cleanerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// AcceptJob locks in an offered job for this cleaner.
func (hb *HandlerBundle) AcceptJob(c *gin.Context) {
	job, err := hb.CleanerSvc.AcceptJob(c.GetString("cleanerID"), c.Param("jobID"))
	if err != nil {
		cleanerError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeclineJob releases an offered job back to dispatch.
func (hb *HandlerBundle) DeclineJob(c *gin.Context) {
	if err := hb.CleanerSvc.DeclineJob(c.GetString("cleanerID"), c.Param("jobID")); err != nil {
		cleanerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}

// StartJob marks an accepted job as underway.
func (hb *HandlerBundle) StartJob(c *gin.Context) {
	job, err := hb.CleanerSvc.StartJob(c.GetString("cleanerID"), c.Param("jobID"))
	if err != nil {
		cleanerError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CompleteJob finishes an in-progress job.
func (hb *HandlerBundle) CompleteJob(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	// Body is optional; a missing body means no notes.
	_ = c.ShouldBindJSON(&input)

	job, err := hb.CleanerSvc.CompleteJob(c.Request.Context(), c.GetString("cleanerID"), c.Param("jobID"), input.Notes)
	if err != nil {
		cleanerError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UploadJobPhotos accepts multipart photo uploads for a job's before or
// after set, stores them in Cloudinary, and records the public IDs.
func (hb *HandlerBundle) UploadJobPhotos(c *gin.Context) {
	phase := c.Param("phase")
	if phase != "before" && phase != "after" {
		utils.JSONError(c, http.StatusBadRequest, "invalid phase", "phase must be before or after")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid upload", err.Error())
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid upload", "no photos attached")
		return
	}

	jobID := c.Param("jobID")
	folder := fmt.Sprintf("jobs/%s/%s", jobID, phase)

	var publicIDs []string
	for _, file := range files {
		tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to stage upload", err.Error())
			return
		}

		publicID, err := hb.Storage.UploadFile(c.Request.Context(), tmpPath, folder)
		os.Remove(tmpPath)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo", err.Error())
			return
		}
		publicIDs = append(publicIDs, publicID)
	}

	if err := hb.CleanerSvc.AttachPhotos(c.GetString("cleanerID"), jobID, phase, publicIDs); err != nil {
		cleanerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicIds": publicIDs})
}
