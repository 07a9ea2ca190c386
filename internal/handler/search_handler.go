package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stylelove/internal/search"
)

const searchHitsPerPage = 50

type SearchRequest struct {
	Query   string `json:"query" example:"wrap dress"`
	Filters struct {
		Category string `json:"category" example:"Dresses"`
	} `json:"filters"`
	BodyType string `json:"bodyType" example:"Hourglass"`
}

type SyncResponse struct {
	Message string `json:"message" example:"Successfully synced outfits to search index"`
	Count   int    `json:"count" example:"120"`
}

// Search godoc
// @Summary      Full-text outfit search
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request body handler.SearchRequest true "query and filters"
// @Success      200 {object} search.Result
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/search [post]
func (h *Handler) Search(c *gin.Context) {
	if h.search == nil || !h.search.CanSearch() {
		respondError(c, http.StatusInternalServerError, "Search credentials not configured")
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := h.search.Query(c.Request.Context(), search.Query{
		Text:        req.Query,
		Filters:     search.BuildFilters(req.Filters.Category, req.BodyType),
		HitsPerPage: searchHitsPerPage,
	})
	if err != nil {
		h.logger.Error("search failed", zap.String("query", req.Query), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Search failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// SyncSearchIndex godoc
// @Summary      Push the whole catalog to the search index
// @Tags         Admin
// @Produce      json
// @Param        X-Admin-Key header string true "admin key"
// @Success      200 {object} handler.SyncResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/admin/search/sync [post]
func (h *Handler) SyncSearchIndex(c *gin.Context) {
	if h.search == nil || !h.search.CanSync() {
		respondError(c, http.StatusInternalServerError, "Search credentials not configured")
		return
	}

	count, err := SyncIndex(c.Request.Context(), h.store, h.search)
	if err != nil {
		if errors.Is(err, search.ErrNotConfigured) {
			respondError(c, http.StatusInternalServerError, "Search credentials not configured")
			return
		}
		h.logger.Error("search index sync failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to sync outfits")
		return
	}

	h.logger.Info("search index synced", zap.Int("count", count))
	c.JSON(http.StatusOK, SyncResponse{Message: "Successfully synced outfits to search index", Count: count})
}
