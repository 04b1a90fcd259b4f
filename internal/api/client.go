package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/marshalc/western-duel/internal/models"
)

var httpClient = &http.Client{Timeout: 8 * time.Second}

// rosterCacheTTL bounds how stale the cached roster may get; the
// library changes rarely, so redundant fetches are just noise.
const rosterCacheTTL = 5 * time.Minute

// Client talks to the roster/data API.
type Client struct {
	baseURL string

	cacheMu    sync.RWMutex
	roster     []*models.Gunslinger
	rosterTime time.Time
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

func (c *Client) apiGet(path string, out interface{}) error {
	base := strings.TrimRight(c.baseURL, "/")
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, base+path, nil)
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Gunslingers fetches the roster, served from cache while fresh.
func (c *Client) Gunslingers() ([]*models.Gunslinger, error) {
	c.cacheMu.RLock()
	if c.roster != nil && time.Since(c.rosterTime) < rosterCacheTTL {
		defer c.cacheMu.RUnlock()
		return c.roster, nil
	}
	c.cacheMu.RUnlock()

	var roster []*models.Gunslinger
	if err := c.apiGet("/api/gunslingers", &roster); err != nil {
		return nil, err
	}
	c.cacheMu.Lock()
	c.roster = roster
	c.rosterTime = time.Now()
	c.cacheMu.Unlock()
	return roster, nil
}

// Gunslinger fetches a single roster entry by name.
func (c *Client) Gunslinger(name string) (*models.Gunslinger, error) {
	var g models.Gunslinger
	if err := c.apiGet("/api/gunslingers/"+url.PathEscape(name), &g); err != nil {
		return nil, err
	}
	return &g, nil
}
