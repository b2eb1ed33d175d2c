package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/octosolido/sales-api/internal/domain/enum"
)

// DocumentJobResponse describes a render job's observable state. DownloadURL
// is set once the artifact is ready.
type DocumentJobResponse struct {
	ID          uuid.UUID         `json:"id"`
	OrderID     string            `json:"order_id"`
	Status      enum.RenderStatus `json:"status"`
	Error       string            `json:"error,omitempty"`
	DownloadURL string            `json:"download_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
