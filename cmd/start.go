/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/openkb/docsearch-be/config"
	"github.com/openkb/docsearch-be/database"
	"github.com/openkb/docsearch-be/handler"
	"github.com/openkb/docsearch-be/repository"
	"github.com/openkb/docsearch-be/service"
	"github.com/openkb/docsearch-be/types"
	"github.com/spf13/cobra"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document search server",
	Long:  `Starts a server that handles document uploads and search queries`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(configPath())
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Shared remote clients, constructed once at startup and injected.
		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
		if err != nil {
			log.Fatalf("Failed to connect to Weaviate database: %v", err)
		}

		embedder := service.NewOpenAIEmbeddingService(
			cfg.EmbeddingConfig.BaseURL,
			cfg.EmbeddingConfig.APIKey,
			cfg.EmbeddingConfig.Model,
		)
		indexService := service.NewIndexService(embedder, weaviateDb)
		aiService := newAIService(cfg.AnswerConfig)

		var uploadRepo repository.UploadRepo
		if cfg.MongoConfig.URI != "" {
			mongoClient, err := database.NewMongoClient(cfg.MongoConfig.URI)
			if err != nil {
				log.Fatalf("Failed to connect to MongoDB: %v", err)
			}
			if err := mongoClient.Ping(context.Background(), nil); err != nil {
				log.Fatalf("Failed to connect to MongoDB: %v", err)
			}
			uploadRepo = repository.NewUploadRepo(mongoClient.Database(cfg.MongoConfig.Database))
		}

		extractService := service.NewExtractService()
		chunkService := service.NewChunkService(types.ChunkServiceConfig{
			WordsPerChunk: cfg.ChunkSize,
		})
		fileService := service.NewFileService(cfg.UploadDir, extractService, chunkService, indexService, uploadRepo)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(fileService)
		searchHandler := handler.NewSearchHandler(indexService, aiService, cfg.TopK)
		documentHandler := handler.NewDocumentHandler(cfg.UploadDir, uploadRepo)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/documents/upload", uploadHandler.UploadDocumentHandler)
			apiV1.POST("/documents/search", searchHandler.HandleSearch)
			apiV1.POST("/documents/ask", searchHandler.HandleAsk)
			apiV1.GET("/documents", documentHandler.HandleListUploads)
			apiV1.GET("/pdf", documentHandler.ServeDocument)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// newAIService picks the generation backend. An empty provider disables
// answer synthesis; search then returns raw similarity results only.
func newAIService(cfg config.AnswerConfig) service.AIService {
	switch cfg.Provider {
	case "openai":
		return service.NewOpenAIService(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.MaxRetries)
	case "gemini":
		aiService, err := service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini service: %v", err)
		}
		return aiService
	case "":
		return nil
	default:
		log.Fatalf("Unknown answer provider: %s", cfg.Provider)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
