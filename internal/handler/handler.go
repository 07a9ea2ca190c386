/**
* Name:         handler.go
* Description:  Gin HTTP handlers for the StyleLove API
* Workflow:     New(Deps) -> Register(router) -> per-route handlers
 */
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stylelove/internal/auth"
	"stylelove/internal/imagestore"
	"stylelove/internal/middleware"
	"stylelove/internal/quiz"
	"stylelove/internal/search"
	"stylelove/internal/storage"
	"stylelove/internal/stylist"
)

type Deps struct {
	Store   *storage.Store
	Tokens  *auth.Tokens
	Search  *search.Client
	Stylist *stylist.Service
	Images  imagestore.Store
	Logger  *zap.Logger
}

type Handler struct {
	store   *storage.Store
	tokens  *auth.Tokens
	quiz    *quiz.Service
	search  *search.Client
	stylist *stylist.Service
	images  imagestore.Store
	logger  *zap.Logger
}

func New(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:   d.Store,
		tokens:  d.Tokens,
		quiz:    quiz.NewService(d.Store, logger),
		search:  d.Search,
		stylist: d.Stylist,
		images:  d.Images,
		logger:  logger,
	}
}

type RouteConfig struct {
	AdminKey           string
	RateLimitPerMinute int
}

// Register mounts every API route on r.
func (h *Handler) Register(r gin.IRouter, cfg RouteConfig) {
	optional := middleware.OptionalAuth(h.tokens)
	required := middleware.RequireAuth(h.tokens)
	// search and the stylist draw on separate per-client budgets
	searchLimit := middleware.RateLimit(cfg.RateLimitPerMinute)
	stylistLimit := middleware.RateLimit(cfg.RateLimitPerMinute)

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/ws/stylist", stylistLimit, h.HandleStylistConnection)

	api := r.Group("/api")
	{
		api.GET("/quiz/questions", h.QuizQuestions)
		api.POST("/calculate-body-type", optional, h.CalculateBodyType)
		api.POST("/quiz", optional, h.CalculateBodyType)
		api.GET("/outfits", optional, h.ListOutfits)
		api.POST("/search", searchLimit, h.Search)
		api.POST("/stylist", stylistLimit, optional, h.Stylist)
		api.POST("/stylist/voice", stylistLimit, optional, h.StylistVoice)
	}

	protected := api.Group("", required)
	{
		protected.GET("/auth/token", h.CurrentUser)
		protected.GET("/profile", h.GetProfile)
		protected.POST("/profile", h.UpdateProfile)
		protected.GET("/favorites", h.ListFavorites)
		protected.POST("/favorites", h.AddFavorite)
		protected.DELETE("/favorites/:id", h.RemoveFavorite)
	}

	admin := api.Group("/admin", middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/outfits", h.CreateOutfit)
		admin.POST("/search/sync", h.SyncSearchIndex)
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func unauthorized(c *gin.Context) {
	respondError(c, http.StatusUnauthorized, "Unauthorized")
}
