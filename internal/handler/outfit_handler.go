package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stylelove/internal/bodytype"
	"stylelove/internal/imagestore"
	"stylelove/internal/middleware"
	"stylelove/internal/models"
)

const maxImageSize = 10 << 20

type OutfitsResponse struct {
	Outfits []models.Outfit `json:"outfits"`
}

// ListOutfits godoc
// @Summary      Browse the outfit catalog
// @Description  Signed-in users with a body type see outfits tagged for it first.
// @Tags         Outfits
// @Produce      json
// @Param        category query string false "category filter; All or empty for every category"
// @Success      200 {object} handler.OutfitsResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/outfits [get]
func (h *Handler) ListOutfits(c *gin.Context) {
	ctx := c.Request.Context()

	var bodyType string
	if id, ok := middleware.IdentityFrom(c); ok {
		bt, err := h.store.BodyTypeFor(ctx, id.UserID)
		if err != nil {
			h.logger.Error("body type lookup failed", zap.String("user_id", id.UserID), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to fetch outfits")
			return
		}
		bodyType = bt
	}

	outfits, err := h.store.ListOutfits(ctx, c.Query("category"), bodyType)
	if err != nil {
		h.logger.Error("list outfits failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch outfits")
		return
	}
	c.JSON(http.StatusOK, OutfitsResponse{Outfits: outfits})
}

// CreateOutfit godoc
// @Summary      Add an outfit to the catalog
// @Tags         Admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Admin-Key header   string true  "admin key"
// @Param        image       formData file   true  "outfit image (jpg, png, webp, gif)"
// @Param        category    formData string true  "category"
// @Param        title       formData string true  "title"
// @Param        description formData string false "description"
// @Param        source      formData string false "image source or credit"
// @Param        body_types  formData []string false "body types the outfit suits" collectionFormat(multi)
// @Success      201 {object} models.Outfit
// @Failure      400 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/admin/outfits [post]
func (h *Handler) CreateOutfit(c *gin.Context) {
	ctx := c.Request.Context()

	outfit := models.Outfit{
		Category:    strings.TrimSpace(c.PostForm("category")),
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Source:      strings.TrimSpace(c.PostForm("source")),
		BodyTypes:   c.PostFormArray("body_types"),
	}
	if outfit.Category == "" || outfit.Title == "" {
		respondError(c, http.StatusBadRequest, "Category and title are required")
		return
	}
	for _, bt := range outfit.BodyTypes {
		if !bodytype.Valid(bt) {
			respondError(c, http.StatusBadRequest, "Invalid body type: "+bt)
			return
		}
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file required")
		return
	}
	if fileHeader.Size > maxImageSize {
		respondError(c, http.StatusBadRequest, "Image too large")
		return
	}
	if _, err := imagestore.ContentType(fileHeader.Filename); err != nil {
		respondError(c, http.StatusBadRequest, "Unsupported image type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read image")
		return
	}
	defer file.Close()

	key, err := h.images.Upload(ctx, fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("image upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}
	outfit.ImageURL = h.images.URL(key)

	if err := h.store.CreateOutfit(ctx, &outfit); err != nil {
		h.logger.Error("create outfit failed", zap.Error(err))
		if delErr := h.images.Delete(ctx, key); delErr != nil {
			h.logger.Warn("orphaned image left behind", zap.String("key", key), zap.Error(delErr))
		}
		respondError(c, http.StatusInternalServerError, "Failed to create outfit")
		return
	}

	h.logger.Info("outfit created", zap.Int64("id", outfit.ID), zap.String("category", outfit.Category))
	c.JSON(http.StatusCreated, outfit)
}
