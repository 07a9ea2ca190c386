package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stylelove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	data map[string][]byte
	sets int
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	d, ok := m.data[key]
	if !ok {
		return nil, errors.New("miss")
	}
	return d, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.data[key] = data
	m.sets++
	return nil
}

func TestBuildFilters(t *testing.T) {
	assert.Equal(t, "", BuildFilters("", ""))
	assert.Equal(t, "", BuildFilters("All", ""))
	assert.Equal(t, `category:"Dresses"`, BuildFilters("Dresses", ""))
	assert.Equal(t, `body_types:"Inverted Triangle"`, BuildFilters("All", "Inverted Triangle"))
	assert.Equal(t, `category:"Tops" AND body_types:"Pear"`, BuildFilters("Tops", "Pear"))
	assert.Equal(t, `category:"a\" OR x:\"b"`, BuildFilters(`a" OR x:"b`, ""))
}

func TestNotConfigured(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.Query(context.Background(), Query{Text: "dress"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, c.SaveObjects(context.Background(), nil), ErrNotConfigured)

	searchOnly := NewClient(Config{AppID: "APP", SearchKey: "s"})
	assert.True(t, searchOnly.CanSearch())
	assert.False(t, searchOnly.CanSync())
}

func TestQuery(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/1/indexes/outfits/query", r.URL.Path)
		assert.Equal(t, "search-key", r.Header.Get("X-Algolia-API-Key"))
		assert.Equal(t, "APP", r.Header.Get("X-Algolia-Application-Id"))

		var q Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, "wrap", q.Text)
		assert.Equal(t, `body_types:"Pear"`, q.Filters)
		assert.Equal(t, 5, q.HitsPerPage)

		w.Write([]byte(`{"hits":[{"objectID":"1","id":1,"title":"Wrap dress","category":"Dresses","body_types":["Pear"]}],"nbHits":1}`))
	}))
	defer srv.Close()

	cache := &memCache{data: map[string][]byte{}}
	c := NewClient(Config{AppID: "APP", SearchKey: "search-key", BaseURL: srv.URL}, WithCache(cache, time.Minute))

	q := Query{Text: "wrap", Filters: BuildFilters("", "Pear"), HitsPerPage: 5}
	res, err := c.Query(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NbHits)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "Wrap dress", res.Hits[0].Title)

	again, err := c.Query(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, res, again)
	assert.Equal(t, 1, calls, "second query served from cache")
	assert.Equal(t, 1, cache.sets)
}

func TestQueryUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid API key"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{AppID: "APP", SearchKey: "bad", BaseURL: srv.URL})
	_, err := c.Query(context.Background(), Query{Text: "x"})
	assert.Error(t, err)
}

func TestSaveObjects(t *testing.T) {
	var got batchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/indexes/looks/batch", r.URL.Path)
		assert.Equal(t, "admin-key", r.Header.Get("X-Algolia-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"taskID":1,"objectIDs":["7"]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{AppID: "APP", AdminKey: "admin-key", IndexName: "looks", BaseURL: srv.URL})
	rec := RecordFromOutfit(models.Outfit{
		ID:        7,
		Title:     "Belted coat",
		BodyTypes: []string{"Hourglass"},
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, c.SaveObjects(context.Background(), []Record{rec}))

	require.Len(t, got.Requests, 1)
	assert.Equal(t, "updateObject", got.Requests[0].Action)
	assert.Equal(t, "7", got.Requests[0].Body.ObjectID)
	assert.Equal(t, "2025-01-02T03:04:05Z", got.Requests[0].Body.CreatedAt)
}

func TestDefaultBaseURL(t *testing.T) {
	c := NewClient(Config{AppID: "ABC"})
	assert.Equal(t, "https://ABC-dsn.algolia.net", c.cfg.BaseURL)
	assert.Equal(t, "outfits", c.cfg.IndexName)
}
