/**
* Name:         client.go
* Description:  REST client for the hosted outfit search index (Algolia API)
* Workflow:     Query -> (cache) -> POST /1/indexes/{index}/query
*               SaveObjects -> POST /1/indexes/{index}/batch
 */

package search

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stylelove/internal/models"

	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("search credentials not configured")

const (
	defaultIndex    = "outfits"
	defaultCacheTTL = 2 * time.Minute
)

// Record is one outfit as stored in the index.
type Record struct {
	ObjectID    string   `json:"objectID"`
	ID          int64    `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	BodyTypes   []string `json:"body_types"`
	Source      string   `json:"source"`
	CreatedAt   string   `json:"created_at"`
}

func RecordFromOutfit(o models.Outfit) Record {
	return Record{
		ObjectID:    strconv.FormatInt(o.ID, 10),
		ID:          o.ID,
		Category:    o.Category,
		Title:       o.Title,
		Description: o.Description,
		ImageURL:    o.ImageURL,
		BodyTypes:   o.BodyTypes,
		Source:      o.Source,
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type Query struct {
	Text        string `json:"query"`
	Filters     string `json:"filters,omitempty"`
	HitsPerPage int    `json:"hitsPerPage"`
}

type Result struct {
	Hits   []Record `json:"hits"`
	NbHits int      `json:"nbHits"`
}

// Cache stores raw query responses. Any Get error is treated as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

type Config struct {
	AppID     string
	SearchKey string
	AdminKey  string
	IndexName string
	// BaseURL overrides https://{AppID}-dsn.algolia.net
	BaseURL string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.IndexName == "" {
		cfg.IndexName = defaultIndex
	}
	if cfg.BaseURL == "" && cfg.AppID != "" {
		cfg.BaseURL = fmt.Sprintf("https://%s-dsn.algolia.net", cfg.AppID)
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cacheTTL:   defaultCacheTTL,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CanSearch reports whether query credentials are present.
func (c *Client) CanSearch() bool {
	return c.cfg.AppID != "" && c.cfg.SearchKey != ""
}

// CanSync reports whether admin credentials are present.
func (c *Client) CanSync() bool {
	return c.cfg.AppID != "" && c.cfg.AdminKey != ""
}

func (c *Client) Query(ctx context.Context, q Query) (*Result, error) {
	if !c.CanSearch() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}

	key := c.cacheKey(body)
	if c.cache != nil {
		if data, err := c.cache.Get(ctx, key); err == nil {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	data, err := c.post(ctx, "query", c.cfg.SearchKey, body)
	if err != nil {
		return nil, err
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("search.Query(): decode response: %w", err)
	}
	if result.Hits == nil {
		result.Hits = []Record{}
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
			c.logger.Warn("search cache write failed", zap.Error(err))
		}
	}
	return &result, nil
}

type batchRequest struct {
	Requests []batchOperation `json:"requests"`
}

type batchOperation struct {
	Action string `json:"action"`
	Body   Record `json:"body"`
}

// SaveObjects upserts the records into the index in a single batch.
func (c *Client) SaveObjects(ctx context.Context, records []Record) error {
	if !c.CanSync() {
		return ErrNotConfigured
	}
	req := batchRequest{Requests: make([]batchOperation, len(records))}
	for i, r := range records {
		req.Requests[i] = batchOperation{Action: "updateObject", Body: r}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = c.post(ctx, "batch", c.cfg.AdminKey, body)
	return err
}

func (c *Client) post(ctx context.Context, op, apiKey string, body []byte) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/1/indexes/%s/%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.IndexName), op)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Algolia-API-Key", apiKey)
	req.Header.Set("X-Algolia-Application-Id", c.cfg.AppID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("search %s: read response: %w", op, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("search index error",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data),
		)
		return nil, fmt.Errorf("search %s failed with status: %s", op, resp.Status)
	}
	return data, nil
}

func (c *Client) cacheKey(body []byte) string {
	sum := sha256.Sum256(append([]byte(c.cfg.IndexName+"\n"), body...))
	return "search:" + hex.EncodeToString(sum[:])
}

// BuildFilters combines the category and body type facets. Empty values and
// the "All" category add no filter.
func BuildFilters(category, bodyType string) string {
	var parts []string
	if category != "" && category != "All" {
		parts = append(parts, facet("category", category))
	}
	if bodyType != "" {
		parts = append(parts, facet("body_types", bodyType))
	}
	return strings.Join(parts, " AND ")
}

func facet(name, value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	return fmt.Sprintf(`%s:"%s"`, name, escaped)
}
