package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/octosolido/sales-api/internal/domain/entity"
	"github.com/octosolido/sales-api/internal/domain/enum"
	"github.com/octosolido/sales-api/pkg/apperror"
	"github.com/octosolido/sales-api/pkg/renderer"
)

// RenderJob is the observable state of one document render. It behaves as a
// single-shot future: pending until the rendering collaborator answers, then
// completed with an artifact or failed with an error. There is no timeout; a
// stalled render stays pending, which the UI shows as an indefinite
// "generating" state.
type RenderJob struct {
	ID        uuid.UUID
	OrderID   string
	SalesType enum.SalesType
	Status    enum.RenderStatus
	Error     string
	CreatedAt time.Time

	artifact []byte
}

// Filename derives the download name from the order. Delivery orders ship an
// "encomenda" document, direct sales a "venda" document.
func (j *RenderJob) Filename() string {
	prefix := "venda"
	if j.SalesType == enum.SalesTypeDelivery {
		prefix = "encomenda"
	}
	return fmt.Sprintf("%s-%s.pdf", prefix, j.OrderID)
}

// RenderService owns the asynchronous boundary to the document rendering
// collaborator. Jobs are kept in memory only: a render result is a disposable
// preview artifact, not persisted state.
type RenderService struct {
	renderer renderer.Renderer

	mu   sync.RWMutex
	jobs map[uuid.UUID]*RenderJob
}

// NewRenderService creates a new render service
func NewRenderService(r renderer.Renderer) *RenderService {
	return &RenderService{
		renderer: r,
		jobs:     make(map[uuid.UUID]*RenderJob),
	}
}

// Enqueue starts rendering a document model and returns the pending job. The
// render runs detached from the originating request: navigating away from the
// preview discards the result, it does not cancel the render.
func (s *RenderService) Enqueue(doc *entity.DocumentModel) (*RenderJob, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, apperror.NewBadRequestError("Document model could not be encoded")
	}

	job := &RenderJob{
		ID:        uuid.New(),
		OrderID:   doc.Order.ID,
		SalesType: doc.Order.SalesType,
		Status:    enum.RenderStatusPending,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	go s.render(job.ID, payload)

	return s.snapshot(job.ID), nil
}

func (s *RenderService) render(id uuid.UUID, payload []byte) {
	artifact, err := s.renderer.Render(context.Background(), payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		// Discarded while rendering; drop the result.
		return
	}
	if err != nil {
		log.Printf("render job %s failed: %v", id, err)
		job.Status = enum.RenderStatusFailed
		job.Error = err.Error()
		return
	}
	job.Status = enum.RenderStatusCompleted
	job.artifact = artifact
}

// Get returns the current state of a render job.
func (s *RenderService) Get(id uuid.UUID) (*RenderJob, error) {
	job := s.snapshot(id)
	if job == nil {
		return nil, apperror.NewNotFoundError("Render job")
	}
	return job, nil
}

// Artifact returns the rendered bytes of a completed job.
func (s *RenderService) Artifact(id uuid.UUID) ([]byte, *RenderJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, nil, apperror.NewNotFoundError("Render job")
	}
	switch job.Status {
	case enum.RenderStatusPending:
		return nil, nil, apperror.NewAppError(409, "Document is still being generated")
	case enum.RenderStatusFailed:
		return nil, nil, apperror.NewRenderError("Document generation failed: " + job.Error)
	}

	copyJob := *job
	return job.artifact, &copyJob, nil
}

// Discard drops a job and its artifact. Called when the user navigates back
// to editing; an in-flight render keeps running but its result is thrown
// away.
func (s *RenderService) Discard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return apperror.NewNotFoundError("Render job")
	}
	delete(s.jobs, id)
	return nil
}

// snapshot returns a copy of a job safe to hand to callers.
func (s *RenderService) snapshot(id uuid.UUID) *RenderJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil
	}
	copyJob := *job
	copyJob.artifact = nil
	return &copyJob
}
