package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crewmirror/internal/common"
	"crewmirror/internal/models"
)

// DefaultTimeout bounds every remote call. A slow endpoint is treated
// like an unreachable one; the caller falls back to cached data.
const DefaultTimeout = 10 * time.Second

// HTTPClient implements Client against the backend's JSON endpoints.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   string
}

// NewHTTPClient builds a client for baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// Token returns the currently installed bearer token.
func (c *HTTPClient) Token() string {
	return c.token
}

// Login exchanges credentials for a bearer token and installs it.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"email": username, "password": password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", common.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed: %s", resp.Status)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	c.token = body.Token
	return body.Token, nil
}

func (c *HTTPClient) FetchServices(ctx context.Context) ([]models.Service, error) {
	raws, err := fetchList[rawService](ctx, c, "/api/services", "services")
	if err != nil {
		return nil, err
	}
	return normalizeAll(raws, rawService.normalize), nil
}

func (c *HTTPClient) FetchCategories(ctx context.Context) ([]models.Category, error) {
	raws, err := fetchList[rawCategory](ctx, c, "/api/categories", "categories")
	if err != nil {
		return nil, err
	}
	return normalizeAll(raws, rawCategory.normalize), nil
}

func (c *HTTPClient) FetchDesignations(ctx context.Context) ([]models.Designation, error) {
	raws, err := fetchList[rawDesignation](ctx, c, "/api/designations", "designations")
	if err != nil {
		return nil, err
	}
	return normalizeAll(raws, rawDesignation.normalize), nil
}

func (c *HTTPClient) FetchZones(ctx context.Context) ([]models.Zone, error) {
	raws, err := fetchList[rawZone](ctx, c, "/api/zones", "zones")
	if err != nil {
		return nil, err
	}
	return normalizeAll(raws, rawZone.normalize), nil
}

func (c *HTTPClient) FetchTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	raws, err := fetchList[rawTimeSlot](ctx, c, "/api/time-slots", "timeslots")
	if err != nil {
		return nil, err
	}
	return normalizeAll(raws, rawTimeSlot.normalize), nil
}

func (c *HTTPClient) FetchDrivers(ctx context.Context) ([]models.Driver, error) {
	raws, err := fetchList[rawDriver](ctx, c, "/api/drivers", "drivers")
	if err != nil {
		return nil, err
	}
	return normalizeAll(raws, rawDriver.normalize), nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context) (*models.Profile, error) {
	body, err := c.get(ctx, "/api/profile")
	if err != nil {
		return nil, err
	}
	var raw rawProfile
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return raw.normalize(), nil
}

// get performs an authenticated GET and returns the raw body.
func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, common.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s failed: %s", path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}
	return body, nil
}

// fetchList retrieves a {"<key>": [rows]} envelope and decodes the rows.
func fetchList[Raw any](ctx context.Context, c *HTTPClient, path, key string) ([]Raw, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s envelope: %w", path, err)
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("response from %s missing %q", path, key)
	}

	var items []Raw
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s rows: %w", path, err)
	}
	return items, nil
}

func normalizeAll[Raw, Row any](raws []Raw, normalize func(Raw) Row) []Row {
	rows := make([]Row, 0, len(raws))
	for _, r := range raws {
		rows = append(rows, normalize(r))
	}
	return rows
}
