package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"stylelove/internal/bodytype"
	"stylelove/internal/middleware"
	"stylelove/internal/quiz"
)

type BodyTypeResponse struct {
	BodyType bodytype.BodyType `json:"bodyType" example:"Hourglass"`
}

type QuestionsResponse struct {
	Questions []quiz.Question `json:"questions"`
}

// CalculateBodyType godoc
// @Summary      Classify quiz answers
// @Description  Returns the body type for the answers. With a valid bearer token the
// @Description  result and the submitted answers are saved to the caller's profile.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        request body quiz.Submission true "quiz answers"
// @Success      200 {object} handler.BodyTypeResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/calculate-body-type [post]
func (h *Handler) CalculateBodyType(c *gin.Context) {
	var sub quiz.Submission
	rawData, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if len(rawData) > 0 {
		if err := json.Unmarshal(rawData, &sub); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request")
			return
		}
	}

	var userID string
	if id, ok := middleware.IdentityFrom(c); ok {
		userID = id.UserID
	}

	bt, err := h.quiz.Submit(c.Request.Context(), userID, sub)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to calculate body type")
		return
	}
	c.JSON(http.StatusOK, BodyTypeResponse{BodyType: bt})
}

// QuizQuestions godoc
// @Summary      Quiz questions and answer options
// @Tags         Quiz
// @Produce      json
// @Success      200 {object} handler.QuestionsResponse
// @Router       /api/quiz/questions [get]
func (h *Handler) QuizQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, QuestionsResponse{Questions: quiz.Questions()})
}
