package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"stylelove/internal/middleware"
	"stylelove/internal/models"
	"stylelove/internal/storage"
)

// /signup request body
type SignupRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"password123"`
	Name     string `json:"name" example:"Ana"`
}

// /login request body
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type CurrentUserResponse struct {
	User models.Identity `json:"user"`
}

// Signup godoc
// @Summary      Create an account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "account details"
// @Success      200 {object} handler.MessageResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	// reject "   " as well as ""
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		respondError(c, http.StatusBadRequest, "Email and Password cannot be empty")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := &models.User{Email: email, Name: strings.TrimSpace(req.Name), PasswordHash: string(hashed)}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			respondError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create user (database error)")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User created successfully"})
}

// Login godoc
// @Summary      Log in and receive a JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "credentials"
// @Success      200 {object} handler.LoginResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("GetUserByEmail failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// CurrentUser godoc
// @Summary      Identity behind the bearer token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.CurrentUserResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/auth/token [get]
func (h *Handler) CurrentUser(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, CurrentUserResponse{User: id})
}
