/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/openkb/docsearch-be/config"
	"github.com/openkb/docsearch-be/database"
	"github.com/openkb/docsearch-be/service"
	"github.com/openkb/docsearch-be/types"
	"github.com/spf13/cobra"
)

// uploadDocumentCmd represents the uploadDocument command
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Index a document from disk",
	Long: `Extracts the text of a PDF or Word document, splits it into fixed
word-count chunks and indexes every chunk into the vector store.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		reinit, _ := cmd.Flags().GetBool("reinit")

		cfg, err := config.LoadConfig(configPath())
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
		if err != nil {
			log.Fatalf("Failed to connect to Weaviate database: %v", err)
		}
		if reinit {
			if err := weaviateDb.ReInit(context.Background()); err != nil {
				log.Fatalf("Failed to reinitialize Weaviate database: %v", err)
			}
		}

		fileService := newFileService(cfg, weaviateDb)
		res, err := fileService.IngestFile(context.Background(), filePath)
		if err != nil {
			log.Fatalf("Failed to upload document: %v", err)
		}
		fmt.Printf("Indexed %s as %d chunks\n", res.OriginalName, len(res.RecordIDs))
		for _, id := range res.RecordIDs {
			fmt.Println(id)
		}
	},
}

// newFileService wires the ingestion pipeline for the CLI commands, which
// run without the Mongo registry.
func newFileService(cfg *config.Config, weaviateDb *database.WeaviateStore) *service.FileService {
	embedder := service.NewOpenAIEmbeddingService(
		cfg.EmbeddingConfig.BaseURL,
		cfg.EmbeddingConfig.APIKey,
		cfg.EmbeddingConfig.Model,
	)
	indexService := service.NewIndexService(embedder, weaviateDb)
	extractService := service.NewExtractService()
	chunkService := service.NewChunkService(types.ChunkServiceConfig{
		WordsPerChunk: cfg.ChunkSize,
	})
	return service.NewFileService(cfg.UploadDir, extractService, chunkService, indexService, nil)
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)

	uploadDocumentCmd.Flags().StringP("file", "f", "", "Path to the file to upload")
	uploadDocumentCmd.Flags().BoolP("reinit", "r", false, "Reinitialize the database")
}
