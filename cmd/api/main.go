package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "stylelove/docs"
	"stylelove/internal/auth"
	"stylelove/internal/config"
	"stylelove/internal/handler"
	"stylelove/internal/imagestore"
	"stylelove/internal/llm"
	"stylelove/internal/logging"
	"stylelove/internal/middleware"
	"stylelove/internal/search"
	"stylelove/internal/storage"
	"stylelove/internal/stylist"
)

// @title                       StyleLove API
// @version                     1.0
// @description                 Body type quiz, outfit catalog, favorites, search and AI stylist.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, envLoaded := config.Load()

	logger, err := logging.New(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	if !envLoaded {
		logger.Info("no .env file found, using process environment")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database unavailable", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer store.Close()

	tokens, err := auth.NewTokens(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("JWT_SECRET_KEY must be set", zap.Error(err))
	}

	searchOpts := []search.Option{search.WithLogger(logger)}
	if cfg.RedisAddr != "" {
		cache, err := search.NewRedisCache(cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, search results will not be cached", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer cache.Close()
			searchOpts = append(searchOpts, search.WithCache(cache, 0))
		}
	}
	searchClient := search.NewClient(search.Config{
		AppID:     cfg.Search.AppID,
		SearchKey: cfg.Search.SearchKey,
		AdminKey:  cfg.Search.AdminKey,
		IndexName: cfg.Search.IndexName,
		BaseURL:   cfg.Search.BaseURL,
	}, searchOpts...)
	if !searchClient.CanSearch() {
		logger.Warn("search credentials not configured; /api/search will fail and the stylist runs without outfit context")
	}

	var completer stylist.Completer
	gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	switch {
	case err == nil:
		defer gemini.Close()
		completer = gemini
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Warn("GEMINI_API_KEY not set; stylist disabled")
	default:
		logger.Error("gemini client failed", zap.Error(err))
	}

	var stylistOpts []stylist.Option
	if voice, closeVoice := newVoice(ctx, cfg, logger); voice != nil {
		defer closeVoice()
		stylistOpts = append(stylistOpts, voice)
	}
	stylistService := stylist.NewService(store, searchClient, completer, logger, stylistOpts...)

	images, err := imagestore.New(ctx, cfg.Images)
	if err != nil {
		logger.Fatal("image storage unavailable", zap.String("type", cfg.Images.Type), zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery(), logging.GinLogger(logger))
	router.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Handler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Admin-Key")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if local, ok := images.(*imagestore.LocalStore); ok && strings.HasPrefix(cfg.Images.PublicURL, "/") {
		router.Static(cfg.Images.PublicURL, local.Root())
	}

	h := handler.New(handler.Deps{
		Store:   store,
		Tokens:  tokens,
		Search:  searchClient,
		Stylist: stylistService,
		Images:  images,
		Logger:  logger,
	})
	h.Register(router, handler.RouteConfig{
		AdminKey:           cfg.AdminAPIKey,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	logger.Info("StyleLove API listening", zap.String("port", cfg.HTTPPort), zap.String("db_driver", cfg.DBDriver))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newVoice wires speech-to-text and text-to-speech when Google credentials
// are configured. Both must succeed for the voice stylist to be enabled.
func newVoice(ctx context.Context, cfg *config.Config, logger *zap.Logger) (stylist.Option, func()) {
	if cfg.GoogleApplicationCredentials == "" {
		logger.Info("GOOGLE_APPLICATION_CREDENTIALS not set; voice stylist disabled")
		return nil, nil
	}

	stt, err := llm.NewTranscriber(ctx, cfg.GoogleApplicationCredentials, "en-US")
	if err != nil {
		logger.Error("speech-to-text client failed; voice stylist disabled", zap.Error(err))
		return nil, nil
	}
	tts, err := llm.NewSynthesizer(ctx, cfg.GoogleApplicationCredentials, "en-US", "en-US-Neural2-F")
	if err != nil {
		stt.Close()
		logger.Error("text-to-speech client failed; voice stylist disabled", zap.Error(err))
		return nil, nil
	}

	return stylist.WithVoice(stt, tts), func() {
		stt.Close()
		tts.Close()
	}
}
