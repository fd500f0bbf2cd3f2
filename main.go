/*
Copyright © 2025 openkb
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/openkb/docsearch-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// Secrets (OPENAI_API_KEY, WEAVIATE_APIKEY, ...) may come straight from the
	// environment, so a missing .env file is not fatal.
	godotenv.Load()
}
