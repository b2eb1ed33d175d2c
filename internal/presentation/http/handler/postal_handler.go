package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/octosolido/sales-api/internal/postal"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/response"
)

// PostalHandler proxies postal code lookups for the address step
type PostalHandler struct {
	client *postal.Client
}

// NewPostalHandler creates a new postal handler
func NewPostalHandler(client *postal.Client) *PostalHandler {
	return &PostalHandler{client: client}
}

// Lookup resolves a postal code to a city suggestion. A failed lookup is not
// an order error; the client falls back to manual city entry.
func (h *PostalHandler) Lookup(c *gin.Context) {
	code := c.Param("code")

	city, err := h.client.Lookup(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, postal.ErrInvalidCode):
			response.BadRequest(c, "Postal code must be 7 digits")
		case errors.Is(err, postal.ErrNotFound):
			response.NotFound(c, "Postal code not found")
		default:
			response.Error(c, err)
		}
		return
	}

	response.OK(c, "Postal code resolved", gin.H{
		"postal_code": postal.Format(postal.Normalize(code)),
		"city":        city,
	})
}
