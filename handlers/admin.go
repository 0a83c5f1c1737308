// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"tidyops/services/admin"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// RegisterAdmin creates a dashboard account and signs it in.
func (hb *HandlerBundle) RegisterAdmin(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		CompanyID string `json:"companyId" binding:"required"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	account, token, err := hb.AdminAuth.Register(input.Name, input.Email, input.CompanyID, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "An account with this email already exists", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register admin", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"admin": account, "token": token})
}

// AuthenticateAdmin signs an admin in and returns a fresh token.
func (hb *HandlerBundle) AuthenticateAdmin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	account, token, err := hb.AdminAuth.SignIn(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign in", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": account, "token": token})
}

// RevokeAdminToken signs the calling admin out everywhere.
func (hb *HandlerBundle) RevokeAdminToken(c *gin.Context) {
	if err := hb.AdminAuth.SignOut(c.GetString("adminID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
