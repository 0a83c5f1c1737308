// File: handlers/clients.go
package handlers

import (
	"net/http"

	"tidyops/models"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// ListClients returns every client of the admin's company.
func (hb *HandlerBundle) ListClients(c *gin.Context) {
	clients, err := hb.Clients.GetByCompany(c.GetString("companyID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClient returns a single client, scoped to the admin's company.
func (hb *HandlerBundle) GetClient(c *gin.Context) {
	client, err := hb.Clients.GetByID(c.Param("clientID"))
	if err != nil || client.CompanyID != c.GetString("companyID") {
		utils.JSONError(c, http.StatusNotFound, "Client not found", "")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient edits a client's contact details, address, or notes.
func (hb *HandlerBundle) UpdateClient(c *gin.Context) {
	client, err := hb.Clients.GetByID(c.Param("clientID"))
	if err != nil || client.CompanyID != c.GetString("companyID") {
		utils.JSONError(c, http.StatusNotFound, "Client not found", "")
		return
	}

	var input struct {
		Contact *models.ContactInfo `json:"contact"`
		Address *models.Address     `json:"address"`
		Notes   *string             `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Contact != nil {
		client.Contact = *input.Contact
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}

	if err := hb.Clients.Update(client); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update client", err.Error())
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client record.
func (hb *HandlerBundle) DeleteClient(c *gin.Context) {
	client, err := hb.Clients.GetByID(c.Param("clientID"))
	if err != nil || client.CompanyID != c.GetString("companyID") {
		utils.JSONError(c, http.StatusNotFound, "Client not found", "")
		return
	}
	if err := hb.Clients.Delete(client.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListQuotes returns every quote requested from the admin's company.
func (hb *HandlerBundle) ListQuotes(c *gin.Context) {
	quotes, err := hb.Quotes.GetByCompany(c.GetString("companyID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list quotes", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// ExpireQuote marks an open quote as expired.
func (hb *HandlerBundle) ExpireQuote(c *gin.Context) {
	quote, err := hb.Quotes.GetByID(c.Param("quoteID"))
	if err != nil || quote.CompanyID != c.GetString("companyID") {
		utils.JSONError(c, http.StatusNotFound, "Quote not found", "")
		return
	}
	if err := hb.Quotes.UpdateStatus(quote.ID, models.QuoteStatusExpired); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to expire quote", err.Error())
		return
	}
	quote.Status = models.QuoteStatusExpired
	c.JSON(http.StatusOK, quote)
}

// DeleteQuote removes a quote record.
func (hb *HandlerBundle) DeleteQuote(c *gin.Context) {
	quote, err := hb.Quotes.GetByID(c.Param("quoteID"))
	if err != nil || quote.CompanyID != c.GetString("companyID") {
		utils.JSONError(c, http.StatusNotFound, "Quote not found", "")
		return
	}
	if err := hb.Quotes.Delete(quote.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
