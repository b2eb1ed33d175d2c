package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/octosolido/sales-api/internal/application/service"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/response"
)

// SplitHandler handles payment split reconciliation requests
type SplitHandler struct {
	splitService *service.SplitService
}

// NewSplitHandler creates a new split handler
func NewSplitHandler(splitService *service.SplitService) *SplitHandler {
	return &SplitHandler{splitService: splitService}
}

// Apply reconciles one payment split edit against the live order total.
func (h *SplitHandler) Apply(c *gin.Context) {
	var req request.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, BindingErrors(err))
		return
	}

	split, matches, err := h.splitService.Apply(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment split updated", response.SplitResponse{
		Split:        split,
		MatchesTotal: matches,
	})
}
