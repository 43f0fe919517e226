/*
Copyright © 2025 krishnavamsip
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/krishnavamsip/pdf-assistant/database"
	"github.com/krishnavamsip/pdf-assistant/handler"
	"github.com/krishnavamsip/pdf-assistant/middleware"
	"github.com/krishnavamsip/pdf-assistant/repository"
	"github.com/krishnavamsip/pdf-assistant/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document assistant server",
	Long:  `Starts a server that handles document upload, summarization, quiz generation and question answering`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()

		aiService, err := newAIService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}

		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database("pdf_assistant")

		storageService, err := service.NewStorageService(cfg)
		if err != nil {
			log.Fatalf("Failed to create storage service: %v", err)
		}

		// init repos
		documentRepo := repository.NewDocumentRepo(mongoDb)
		userRepo := repository.NewUserRepo(mongoDb.Collection("users"))

		// init services
		pdfService := service.NewPDFService()
		chapterService := service.NewChapterService()
		summaryService := service.NewSummaryService(aiService, cfg)
		quizService := service.NewQuizService(aiService, cfg)
		qaService := service.NewQAService(aiService, cfg)
		userService := service.NewUserService(userRepo)
		documentService := service.NewDocumentService(documentRepo, chapterService)
		wsService := service.NewWebSocketService(summaryService, documentService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		loginHandler := handler.NewLoginHandler(userService)
		userHandler := handler.NewUserHandler(userService)
		uploadHandler := handler.NewUploadHandler(pdfService, storageService, chapterService, documentRepo)
		documentHandler := handler.NewDocumentHandler(documentRepo, storageService)
		summaryHandler := handler.NewSummaryHandler(summaryService, documentService)
		quizHandler := handler.NewQuizHandler(quizService, documentService)
		qaHandler := handler.NewQAHandler(qaService, documentService)
		chapterHandler := handler.NewChapterHandler(chapterService, documentService)
		statsHandler := handler.NewStatsHandler(aiService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/login", loginHandler.HandleLogin)

		// Protected routes
		userRoutes := apiV1.Group("/")
		userRoutes.Use(middleware.AuthMiddleware)
		{
			userRoutes.POST("/users/create", userHandler.HandleCreateUser)
			userRoutes.POST("/documents/upload", uploadHandler.UploadDocumentHandler)
			userRoutes.GET("/documents", documentHandler.HandleListDocuments)
			userRoutes.GET("/documents/:id", documentHandler.HandleGetDocument)
			userRoutes.DELETE("/documents/:id", documentHandler.HandleDeleteDocument)
			userRoutes.POST("/summarize", summaryHandler.HandleSummarize)
			userRoutes.GET("/summarize/ws", func(c *gin.Context) {
				wsService.HandleSummarize(c.Writer, c.Request)
			})
			userRoutes.POST("/quiz", quizHandler.HandleQuiz)
			userRoutes.POST("/ask", qaHandler.HandleAsk)
			userRoutes.POST("/chapters", chapterHandler.HandleDetectChapters)
			userRoutes.GET("/stats", statsHandler.HandleStats)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
