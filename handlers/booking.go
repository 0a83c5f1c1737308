// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"tidyops/models"
	"tidyops/services/booking"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// sessionError maps booking session failures to HTTP responses.
func sessionError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Booking session error", err.Error())
}

// StartBookingSession creates a new booking session for a company.
func (hb *HandlerBundle) StartBookingSession(c *gin.Context) {
	var input struct {
		CompanyID string `json:"companyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := hb.Sessions.InitiateSession(input.CompanyID)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetBookingSession returns the current draft and pricing of a session.
func (hb *HandlerBundle) GetBookingSession(c *gin.Context) {
	session, err := hb.Sessions.GetSession(c.Param("sessionID"))
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// The per-section update handlers bind a partial payload and return the
// repriced session. Omitted fields are left untouched.

func (hb *HandlerBundle) UpdateBookingContact(c *gin.Context) {
	var input models.ContactUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.UpdateContact(c.Param("sessionID"), input)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (hb *HandlerBundle) UpdateBookingAddress(c *gin.Context) {
	var input models.AddressUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.UpdateAddress(c.Param("sessionID"), input)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (hb *HandlerBundle) UpdateBookingService(c *gin.Context) {
	var input models.ServiceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.UpdateService(c.Param("sessionID"), input)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (hb *HandlerBundle) UpdateBookingExtras(c *gin.Context) {
	var input models.ExtrasUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.UpdateExtras(c.Param("sessionID"), input)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (hb *HandlerBundle) UpdateBookingSchedule(c *gin.Context) {
	var input models.ScheduleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.UpdateSchedule(c.Param("sessionID"), input)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (hb *HandlerBundle) UpdateBookingInstructions(c *gin.Context) {
	var input models.InstructionsUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.UpdateInstructions(c.Param("sessionID"), input)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ApplyBookingPromo applies a promo code to the session. Unknown codes
// are accepted and simply contribute no discount.
func (hb *HandlerBundle) ApplyBookingPromo(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := hb.Sessions.ApplyPromoCode(c.Param("sessionID"), input.Code)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RequestBookingQuote persists the session's current pricing as a quote.
func (hb *HandlerBundle) RequestBookingQuote(c *gin.Context) {
	quote, err := hb.Sessions.RequestQuote(c.Param("sessionID"))
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quote)
}

// ConfirmBooking turns a complete session into a job. An incomplete
// draft returns every missing field at once.
func (hb *HandlerBundle) ConfirmBooking(c *gin.Context) {
	job, err := hb.Sessions.ConfirmBooking(c.Param("sessionID"))
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "booking draft is incomplete",
				"fields": vErr.Missing,
			})
			return
		}
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// CancelBookingSession abandons an in-flight session.
func (hb *HandlerBundle) CancelBookingSession(c *gin.Context) {
	if err := hb.Sessions.CancelSession(c.Param("sessionID")); err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
