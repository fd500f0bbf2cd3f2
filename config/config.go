package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port                string              `mapstructure:"port"`
	UploadDir           string              `mapstructure:"upload_dir"`
	ChunkSize           int                 `mapstructure:"chunk_size"` // words per chunk
	TopK                int                 `mapstructure:"top_k"`
	EmbeddingConfig     EmbeddingConfig     `mapstructure:"embedding"`
	AnswerConfig        AnswerConfig        `mapstructure:"answer"`
	WeaviateStoreConfig WeaviateStoreConfig `mapstructure:"weaviate_store_config"`
	MongoConfig         MongoConfig         `mapstructure:"mongo"`
}

type EmbeddingConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"OPENAI_API_KEY"`
}

// AnswerConfig selects and configures the generation backend. Provider is
// "openai" or "gemini"; an empty provider disables answer synthesis and the
// search surface falls back to raw similarity results only.
type AnswerConfig struct {
	Provider      string   `mapstructure:"provider"`
	BaseURL       string   `mapstructure:"base_url"`
	Model         string   `mapstructure:"model"`
	APIKey        string   `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys []string `mapstructure:"GEMINI_API_KEYS"`
	MaxRetries    int      `mapstructure:"max_retries"`
}

type WeaviateStoreConfig struct {
	Host   string `mapstructure:"host"`
	APIKey string `mapstructure:"WEAVIATE_APIKEY"` // Changed to match env var
	Class  string `mapstructure:"class"`
}

type MongoConfig struct {
	URI      string `mapstructure:"MONGODB_URI"`
	Database string `mapstructure:"database"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("embedding.OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("answer.OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("answer.GEMINI_API_KEYS", "GEMINI_API_KEYS")
	v.BindEnv("weaviate_store_config.WEAVIATE_APIKEY", "WEAVIATE_APIKEY")
	v.BindEnv("mongo.MONGODB_URI", "MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.ChunkSize <= 0 {
		config.ChunkSize = 100
	}
	if config.TopK <= 0 {
		config.TopK = 5
	}

	return &config, nil
}
