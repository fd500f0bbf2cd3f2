/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"github.com/openkb/docsearch-be/config"
	"github.com/openkb/docsearch-be/database"
	"github.com/spf13/cobra"
)

// batchUploadDocumentCmd represents the batchUploadDocument command
var batchUploadDocumentCmd = &cobra.Command{
	Use:   "batch-upload-document",
	Short: "Index every supported document in a directory",
	Long: `Walks a directory and runs the extract/chunk/index pipeline on every
PDF and Word document found in it. Unsupported files are skipped; a failed
document is logged and the rest continue.`,
	Run: func(cmd *cobra.Command, args []string) {
		directory, _ := cmd.Flags().GetString("directory")
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

		entries, err := readSupportedFiles(directory)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, filePath := range entries {
			res, err := fileService.IngestFile(context.Background(), filePath)
			if err != nil {
				log.Printf("Failed to upload document %s: %v", filePath, err)
				continue
			}
			log.Printf("Indexed %s as %d chunks", res.OriginalName, len(res.RecordIDs))
		}
	},
}

func readSupportedFiles(directory string) ([]string, error) {
	var paths []string
	entries, err := filepath.Glob(filepath.Join(directory, "*"))
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		switch strings.ToLower(filepath.Ext(entry)) {
		case ".pdf", ".doc", ".docx":
			paths = append(paths, entry)
		}
	}
	return paths, nil
}

func init() {
	rootCmd.AddCommand(batchUploadDocumentCmd)

	batchUploadDocumentCmd.Flags().String("directory", "", "Path to the dir to upload")
	batchUploadDocumentCmd.Flags().BoolP("reinit", "r", false, "Reinitialize the database")
}
