package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stylelove/internal/middleware"
	"stylelove/internal/models"
	"stylelove/internal/storage"
)

type FavoritesResponse struct {
	Favorites []models.Favorite `json:"favorites"`
}

type AddFavoriteRequest struct {
	OutfitID int64 `json:"outfitId" example:"42"`
}

type AddFavoriteResponse struct {
	ID      int64  `json:"id,omitempty" example:"7"`
	Message string `json:"message" example:"Added to favorites"`
}

// ListFavorites godoc
// @Summary      Caller's favorite outfits, newest first
// @Tags         Favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.FavoritesResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/favorites [get]
func (h *Handler) ListFavorites(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		unauthorized(c)
		return
	}

	favorites, err := h.store.ListFavorites(c.Request.Context(), id.UserID)
	if err != nil {
		h.logger.Error("list favorites failed", zap.String("user_id", id.UserID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Favorites: favorites})
}

// AddFavorite godoc
// @Summary      Favorite an outfit
// @Description  Favoriting the same outfit twice is not an error.
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.AddFavoriteRequest true "outfit to favorite"
// @Success      200 {object} handler.AddFavoriteResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/favorites [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.OutfitID <= 0 {
		respondError(c, http.StatusBadRequest, "Outfit ID required")
		return
	}

	favID, created, err := h.store.AddFavorite(c.Request.Context(), id.UserID, req.OutfitID)
	if err != nil {
		if errors.Is(err, storage.ErrOutfitNotFound) {
			respondError(c, http.StatusNotFound, "Outfit not found")
			return
		}
		h.logger.Error("add favorite failed", zap.String("user_id", id.UserID), zap.Int64("outfit_id", req.OutfitID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to add favorite")
		return
	}
	if !created {
		c.JSON(http.StatusOK, AddFavoriteResponse{Message: "Already favorited"})
		return
	}
	c.JSON(http.StatusOK, AddFavoriteResponse{ID: favID, Message: "Added to favorites"})
}

// RemoveFavorite godoc
// @Summary      Unfavorite an outfit
// @Tags         Favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "outfit id"
// @Success      200 {object} handler.MessageResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/favorites/{id} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		unauthorized(c)
		return
	}

	outfitID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid outfit ID")
		return
	}

	if err := h.store.RemoveFavorite(c.Request.Context(), id.UserID, outfitID); err != nil {
		h.logger.Error("remove favorite failed", zap.String("user_id", id.UserID), zap.Int64("outfit_id", outfitID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Removed from favorites"})
}
