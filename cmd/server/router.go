package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"palette-backend/internal/config"
	"palette-backend/internal/handlers"
	"palette-backend/internal/metrics"
	"palette-backend/internal/middleware"
	"palette-backend/internal/services"
)

type routerDeps struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	service *services.GenerationService
	images  handlers.ImageStore
}

func newRouter(d routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(d.metrics.Middleware())

	generateHandler := handlers.NewGenerateHandler(d.service, d.logger)
	exportHandler := handlers.NewExportHandler(d.metrics, d.logger)
	uploadHandler := handlers.NewUploadHandler(d.images, d.logger)
	historyHandler := handlers.NewHistoryHandler(d.service, d.logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(d.metrics.Handler()))

	api := router.Group("/api")

	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(d.cfg.SupabaseJWTSecret))
	public.POST("/generate", generateHandler.Generate)
	public.POST("/export", exportHandler.Export)

	private := api.Group("")
	private.Use(middleware.AuthMiddleware(d.cfg.SupabaseJWTSecret))
	private.POST("/uploads", uploadHandler.Upload)
	private.DELETE("/uploads/*path", uploadHandler.Delete)
	private.GET("/generations", historyHandler.List)

	return router
}

func withCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
	}).Handler(h)
}
