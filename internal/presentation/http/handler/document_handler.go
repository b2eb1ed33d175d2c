package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/octosolido/sales-api/internal/application/service"
	"github.com/octosolido/sales-api/internal/domain/enum"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/response"
)

// DocumentHandler handles the preview document lifecycle: create a render
// job, poll it, download the artifact, discard it.
type DocumentHandler struct {
	orderService  *service.OrderService
	renderService *service.RenderService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(orderService *service.OrderService, renderService *service.RenderService) *DocumentHandler {
	return &DocumentHandler{
		orderService:  orderService,
		renderService: renderService,
	}
}

// Create validates and normalizes a form submission, then enqueues a render
// of the resulting document model.
func (h *DocumentHandler) Create(c *gin.Context) {
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

	job, err := h.renderService.Enqueue(result.Document)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document render started", jobResponse(job))
}

// Get returns the current state of a render job.
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.renderService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Render job retrieved", jobResponse(job))
}

// Download streams the rendered artifact with its derived filename.
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	artifact, job, err := h.renderService.Artifact(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", job.Filename()))
	c.Data(http.StatusOK, "application/pdf", artifact)
}

// Delete discards a render job and its artifact.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.renderService.Discard(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// jobResponse maps a render job onto its API shape.
func jobResponse(job *service.RenderJob) response.DocumentJobResponse {
	resp := response.DocumentJobResponse{
		ID:        job.ID,
		OrderID:   job.OrderID,
		Status:    job.Status,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
	}
	if job.Status == enum.RenderStatusCompleted {
		resp.DownloadURL = fmt.Sprintf("/api/v1/documents/%s/download", job.ID)
	}
	return resp
}
