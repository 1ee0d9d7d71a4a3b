package router

import (
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/config"
	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/handlers"
	"github.com/contentflowhq/contentflow-backend/internal/middleware"
	"github.com/contentflowhq/contentflow-backend/internal/services"
	"github.com/contentflowhq/contentflow-backend/internal/services/ai"
	"github.com/contentflowhq/contentflow-backend/internal/services/auth"
	"github.com/contentflowhq/contentflow-backend/internal/services/errorlog"
	"github.com/contentflowhq/contentflow-backend/internal/services/excel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with all API routes
func SetupRouter(
	db *gorm.DB,
	authService *auth.AuthService,
	rabbitMQ *services.RabbitMQService,
	sseHub *services.SSEHub,
	sink *errorlog.Sink,
	exportsDir string,
) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Client-Info", "Apikey"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create repositories
	contentRepo := repository.NewContentRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	outlineRepo := repository.NewOutlineRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)
	publishedRepo := repository.NewPublishedContentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	providerKeyRepo := repository.NewProviderKeyRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)
	errorLogRepo := repository.NewErrorLogRepository(db)
	userRepo := repository.NewUserRepository(db)

	// A missing broker degrades publishing to record-only mode
	var jobs services.JobPublisher
	if rabbitMQ != nil {
		jobs = rabbitMQ
	}

	// Create services
	aiService := ai.NewService(config.GetAnthropicConfig(), providerKeyRepo)
	contentService := services.NewContentService(contentRepo)
	ideaService := services.NewIdeaService(ideaRepo)
	outlineService := services.NewOutlineService(outlineRepo)
	documentService := services.NewDocumentService(documentRepo)
	publishingService := services.NewPublishingService(connectionRepo, publishedRepo, contentRepo, jobs)
	analyticsService := services.NewAnalyticsService(analyticsRepo, publishedRepo)
	providerKeyService := services.NewProviderKeyService(providerKeyRepo)
	preferenceService := services.NewPreferenceService(preferenceRepo)
	adminService := services.NewAdminService(userRepo, contentRepo, documentRepo, errorLogRepo)
	excelService := excel.NewExcelService(analyticsRepo, publishedRepo, exportsDir)

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(db, authService)

	// Create handlers with services
	authHandler := handlers.NewAuthHandler(authService)
	generateHandler := handlers.NewGenerateHandler(aiService)
	contentHandler := handlers.NewContentHandler(contentService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	outlineHandler := handlers.NewOutlineHandler(outlineService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	publishingHandler := handlers.NewPublishingHandler(publishingService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, excelService, exportsDir)
	providerKeyHandler := handlers.NewProviderKeyHandler(providerKeyService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	errorLogHandler := handlers.NewErrorLogHandler(sink, sseHub)
	adminHandler := handlers.NewAdminHandler(adminService, authService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.Refresh)
		}

		// AI generation routes. A bearer token is optional here: an
		// authenticated caller's own provider key takes precedence over
		// the shared one.
		aiRoutes := api.Group("/ai")
		aiRoutes.Use(bearerTokenMiddleware.OptionalAuth())
		{
			aiRoutes.POST("/generate-ideas", generateHandler.GenerateIdeas)
			aiRoutes.POST("/generate-hooks", generateHandler.GenerateHooks)
			aiRoutes.POST("/generate-outline", generateHandler.GenerateOutline)
			aiRoutes.POST("/text-operations", generateHandler.TextOperation)
			aiRoutes.POST("/analyze-content", generateHandler.AnalyzeContent)
		}

		// Client error reporting accepts anonymous batches
		logRoutes := api.Group("/logs")
		logRoutes.Use(bearerTokenMiddleware.OptionalAuth())
		{
			logRoutes.POST("/errors", errorLogHandler.ReportErrors)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.RequireAuth())
		{
			// Auth protected routes
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/me", authHandler.Me)
				authProtected.POST("/change-password", authHandler.ChangePassword)
			}

			// Content routes
			content := protected.Group("/content")
			{
				content.POST("", contentHandler.CreateContent)
				content.GET("", contentHandler.ListContent)
				content.GET("/:id", contentHandler.GetContent)
				content.PUT("/:id", contentHandler.UpdateContent)
				content.DELETE("/:id", contentHandler.DeleteContent)
				content.POST("/:id/publish", publishingHandler.PublishContent)
			}

			// Idea routes
			ideas := protected.Group("/ideas")
			{
				ideas.POST("", ideaHandler.SaveIdea)
				ideas.GET("", ideaHandler.ListIdeas)
				ideas.GET("/:id", ideaHandler.GetIdea)
				ideas.PUT("/:id", ideaHandler.UpdateIdea)
				ideas.DELETE("/:id", ideaHandler.DeleteIdea)
			}

			// Outline routes
			outlines := protected.Group("/outlines")
			{
				outlines.POST("", outlineHandler.SaveOutline)
				outlines.GET("", outlineHandler.ListOutlines)
				outlines.GET("/:id", outlineHandler.GetOutline)
				outlines.PUT("/:id", outlineHandler.UpdateOutline)
				outlines.DELETE("/:id", outlineHandler.DeleteOutline)
			}

			// Document routes
			documents := protected.Group("/documents")
			{
				documents.POST("", documentHandler.RegisterDocument)
				documents.GET("", documentHandler.ListDocuments)
				documents.GET("/:id", documentHandler.GetDocument)
				documents.PUT("/:id", documentHandler.UpdateDocument)
				documents.DELETE("/:id", documentHandler.DeleteDocument)
			}

			// Publishing routes
			publishing := protected.Group("/publishing")
			{
				publishing.POST("/connections", publishingHandler.ConnectPlatform)
				publishing.GET("/connections", publishingHandler.ListConnections)
				publishing.DELETE("/connections/:platform", publishingHandler.DisconnectPlatform)
				publishing.GET("/published", publishingHandler.ListPublished)
				publishing.PUT("/published/:id/status", publishingHandler.UpdatePublishStatus)
			}

			// Analytics routes
			analytics := protected.Group("/analytics")
			{
				analytics.POST("", analyticsHandler.RecordMetrics)
				analytics.GET("", analyticsHandler.ListMetrics)
				analytics.GET("/summary", analyticsHandler.GetSummary)
				analytics.GET("/export", analyticsHandler.ExportAnalytics)
				analytics.GET("/export/download/:filename", analyticsHandler.DownloadExport)
			}

			// Provider key routes
			providerKeys := protected.Group("/provider-keys")
			{
				providerKeys.POST("", providerKeyHandler.SaveKey)
				providerKeys.GET("", providerKeyHandler.ListKeys)
				providerKeys.PUT("/:id/toggle", providerKeyHandler.ToggleKey)
				providerKeys.DELETE("/:id", providerKeyHandler.DeleteKey)
			}

			// Preference routes
			preferences := protected.Group("/preferences")
			{
				preferences.GET("", preferenceHandler.GetPreferences)
				preferences.PUT("", preferenceHandler.UpdatePreferences)
			}

			// Admin routes (requires admin privileges)
			admin := protected.Group("/admin")
			admin.Use(bearerTokenMiddleware.RequireAdmin())
			{
				admin.GET("/stats", adminHandler.GetSystemStats)
				admin.GET("/users", adminHandler.ListUsers)
				admin.PUT("/users/:id/active", adminHandler.SetUserActive)
				admin.PUT("/users/:id/password", adminHandler.ResetUserPassword)
				admin.GET("/errors/metrics", adminHandler.GetErrorMetrics)
				admin.GET("/errors/stream", errorLogHandler.StreamErrors)
			}
		}
	}

	return r
}
