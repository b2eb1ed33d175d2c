package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when the lookup service does not know the code.
	ErrNotFound = errors.New("postal: code not found")
	// ErrInvalidCode is returned before dialing when the code is not 7 digits.
	ErrInvalidCode = errors.New("postal: code must be 7 digits")
)

var codePattern = regexp.MustCompile(`^[0-9]{7}$`)

// lookupResponse is the lookup service's wire format.
type lookupResponse struct {
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// Client resolves 7-digit postal codes to cities via the external lookup
// collaborator. Results are cached; a code-to-city mapping changes rarely.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cacheTTL   time.Duration
	cache      map[string]*cachedCity
	cacheMu    sync.RWMutex
}

type cachedCity struct {
	city      string
	expiresAt time.Time
}

// NewClient creates a new postal lookup client.
func NewClient(baseURL string, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cacheTTL: cacheTTL,
		cache:    make(map[string]*cachedCity),
	}
}

// Normalize strips spaces and the 4+3 separator from a user-entered code.
func Normalize(code string) string {
	code = strings.ReplaceAll(code, " ", "")
	return strings.ReplaceAll(code, "-", "")
}

// Format renders a 7-digit code in the conventional XXXX-XXX form.
func Format(code string) string {
	return code[:4] + "-" + code[4:]
}

// Lookup resolves a postal code to its city. The returned city is an
// auto-fill suggestion; the user keeps the last word on the city field.
func (c *Client) Lookup(ctx context.Context, code string) (string, error) {
	code = Normalize(code)
	if !codePattern.MatchString(code) {
		return "", ErrInvalidCode
	}

	c.cacheMu.RLock()
	if cached, ok := c.cache[code]; ok && time.Now().Before(cached.expiresAt) {
		c.cacheMu.RUnlock()
		return cached.city, nil
	}
	c.cacheMu.RUnlock()

	url := fmt.Sprintf("%s/postal-codes/%s", c.baseURL, Format(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("postal: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("postal: lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("postal: lookup service returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("postal: failed to decode response: %w", err)
	}
	if body.City == "" {
		return "", ErrNotFound
	}

	c.cacheMu.Lock()
	c.cache[code] = &cachedCity{
		city:      body.City,
		expiresAt: time.Now().Add(c.cacheTTL),
	}
	c.cacheMu.Unlock()

	return body.City, nil
}
