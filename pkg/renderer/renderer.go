package renderer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Renderer is the interface to the external document rendering collaborator.
// It receives a document model encoded as JSON and returns the rendered PDF
// bytes. Page layout and styling live entirely on the collaborator's side.
type Renderer interface {
	// Render turns a document-model JSON payload into a PDF artifact.
	Render(ctx context.Context, document []byte) ([]byte, error)
}

// --- HTTP Renderer (posts the document model to a rendering service) ---

type httpRenderer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRenderer creates a renderer backed by an HTTP rendering service.
// BaseURL should not include a trailing slash, e.g. "http://renderer:9400".
func NewHTTPRenderer(baseURL string) Renderer {
	return &httpRenderer{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (r *httpRenderer) Render(ctx context.Context, document []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("renderer: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("renderer: request to %s failed: %w", r.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renderer: service returned status %d", resp.StatusCode)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("renderer: failed to read artifact: %w", err)
	}
	return artifact, nil
}

// --- Null Renderer (no-op, used when no rendering service is configured) ---

type nullRenderer struct{}

// NewNullRenderer creates a no-op renderer for environments without a
// rendering service. It produces an empty artifact.
func NewNullRenderer() Renderer {
	return &nullRenderer{}
}

func (r *nullRenderer) Render(ctx context.Context, document []byte) ([]byte, error) {
	return []byte{}, nil
}

// NewRendererFromConfig creates the appropriate Renderer based on type.
//
//	rendererType: "http" or "none"
//	baseURL: rendering service address for HTTP renderers
func NewRendererFromConfig(rendererType, baseURL string) (Renderer, error) {
	switch rendererType {
	case "http":
		if baseURL == "" {
			return nil, fmt.Errorf("renderer: base URL is required for HTTP renderer type")
		}
		return NewHTTPRenderer(baseURL), nil
	case "none", "":
		return NewNullRenderer(), nil
	default:
		return nil, fmt.Errorf("renderer: unknown renderer type %q (use http or none)", rendererType)
	}
}
