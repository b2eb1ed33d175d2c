package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/octosolido/sales-api/internal/application/service"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/response"
)

// StoreHandler handles store catalog HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// List handles listing all retail locations
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.ListStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stores retrieved successfully", stores)
}

// Get handles retrieving a single store
func (h *StoreHandler) Get(c *gin.Context) {
	store, err := h.storeService.GetStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Store retrieved successfully", store)
}
