package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/octosolido/sales-api/internal/application/service"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/response"
)

// OrderHandler handles intake form validation and preview requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Validate runs the full validation gate over a form submission without
// producing a document. All field errors are returned together.
func (h *OrderHandler) Validate(c *gin.Context) {
	var req request.PreviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, BindingErrors(err))
		return
	}

	if fieldErrors := h.orderService.Validate(c.Request.Context(), &req); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	response.OK(c, "Order is valid", nil)
}

// Preview validates a form submission and normalizes it into a renderer-ready
// document model.
func (h *OrderHandler) Preview(c *gin.Context) {
	var req request.PreviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, BindingErrors(err))
		return
	}

	if fieldErrors := h.orderService.Validate(c.Request.Context(), &req); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	result, err := h.orderService.Preview(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order preview generated", result)
}
