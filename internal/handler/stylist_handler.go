package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stylelove/internal/llm"
	"stylelove/internal/middleware"
	"stylelove/internal/stylist"
)

const (
	stylistErrorMessage = "Sorry, I'm having trouble right now. Please try again!"
	maxVoiceUpload      = 5 << 20
)

type StylistRequest struct {
	Messages    []llm.Message `json:"messages"`
	UserMessage string        `json:"userMessage" example:"What should I wear to a summer wedding?"`
}

type StylistResponse struct {
	Reply string `json:"reply" example:"A flowy midi wrap dress would look gorgeous on you!"`
}

// Stylist godoc
// @Summary      Chat with the AI stylist
// @Description  Replies are personalised with the caller's body type and matching outfits when signed in.
// @Tags         Stylist
// @Accept       json
// @Produce      json
// @Param        request body handler.StylistRequest true "conversation so far and the new message"
// @Success      200 {object} handler.StylistResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/stylist [post]
func (h *Handler) Stylist(c *gin.Context) {
	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.UserMessage == "" && len(req.Messages) == 0 {
		respondError(c, http.StatusBadRequest, "Message required")
		return
	}

	id, _ := middleware.IdentityFrom(c)
	reply, err := h.stylist.Reply(c.Request.Context(), id, req.Messages, req.UserMessage)
	if err != nil {
		h.logger.Error("stylist reply failed", zap.String("user_id", id.UserID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, stylistErrorMessage)
		return
	}
	c.JSON(http.StatusOK, StylistResponse{Reply: reply})
}

// StylistVoice godoc
// @Summary      Ask the AI stylist by voice
// @Description  audio is LINEAR16 16kHz mono. The response audio is base64 LINEAR16 16kHz.
// @Tags         Stylist
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio    formData file   true  "recorded question"
// @Param        messages formData string false "JSON array of prior {role, content} turns"
// @Success      200 {object} stylist.VoiceReply
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      501 {object} handler.ErrorResponse
// @Router       /api/stylist/voice [post]
func (h *Handler) StylistVoice(c *gin.Context) {
	if !h.stylist.VoiceEnabled() {
		respondError(c, http.StatusNotImplemented, "Voice stylist not configured")
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Audio file required")
		return
	}
	if fileHeader.Size > maxVoiceUpload {
		respondError(c, http.StatusBadRequest, "Audio too large")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read audio")
		return
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read audio")
		return
	}

	var history []llm.Message
	if raw := c.PostForm("messages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid messages")
			return
		}
	}

	id, _ := middleware.IdentityFrom(c)
	out, err := h.stylist.Converse(c.Request.Context(), id, history, audio)
	if err != nil {
		if errors.Is(err, stylist.ErrVoiceNotConfigured) {
			respondError(c, http.StatusNotImplemented, "Voice stylist not configured")
			return
		}
		h.logger.Error("voice stylist failed", zap.String("user_id", id.UserID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, stylistErrorMessage)
		return
	}
	c.JSON(http.StatusOK, out)
}
