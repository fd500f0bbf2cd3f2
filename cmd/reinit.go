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
	"github.com/spf13/cobra"
)

// reinitCmd drops and recreates the chunk collection in the vector store.
// Everything indexed so far is lost.
var reinitCmd = &cobra.Command{
	Use:   "reinit",
	Short: "Drop and recreate the vector store collection",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath())
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
		if err != nil {
			log.Fatalf("Failed to connect to Weaviate database: %v", err)
		}
		if err := weaviateDb.ReInit(context.Background()); err != nil {
			log.Fatalf("Failed to reinitialize Weaviate database: %v", err)
		}
		fmt.Println("Vector store collection recreated")
	},
}

func init() {
	rootCmd.AddCommand(reinitCmd)
}
