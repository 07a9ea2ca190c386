package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stylelove/internal/bodytype"
	"stylelove/internal/middleware"
	"stylelove/internal/models"
)

type ProfileResponse struct {
	Profile *models.Profile `json:"profile"`
}

// GetProfile godoc
// @Summary      Caller's style profile
// @Description  profile is null until the quiz is taken or a profile update is made.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		unauthorized(c)
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		h.logger.Error("get profile failed", zap.String("user_id", id.UserID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
}

// UpdateProfile godoc
// @Summary      Partially update the caller's profile
// @Description  Only keys present in the body are written; null clears a column.
// @Description  A body with none of the profile keys returns "No updates provided".
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object{body_type=string,shoulder_hip_ratio=string,volume_area=string,preferred_fit=string,height_range=string} true "fields to change"
// @Success      200 {object} handler.ProfileResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profile [post]
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		unauthorized(c)
		return
	}

	var update models.ProfileUpdate
	rawData, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := json.Unmarshal(rawData, &update); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if v := update.BodyType.Value; v != nil && !bodytype.Valid(*v) {
		respondError(c, http.StatusBadRequest, "Invalid body type")
		return
	}
	if update.Empty() {
		c.JSON(http.StatusOK, MessageResponse{Message: "No updates provided"})
		return
	}

	profile, err := h.store.UpsertProfile(c.Request.Context(), id.UserID, update)
	if err != nil {
		h.logger.Error("update profile failed", zap.String("user_id", id.UserID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
}
