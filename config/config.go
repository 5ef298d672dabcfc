package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	SessionSecret string `json:"session_secret"`

	Catalog struct {
		SourcePath     string `json:"source_path"`
		DownloadedPath string `json:"downloaded_path"`
		ClothesDir     string `json:"clothes_dir"`
		ModelsDir      string `json:"models_dir"`
	} `json:"catalog"`

	AI struct {
		BaseURL        string `json:"base_url"`
		ChatModel      string `json:"chat_model"`
		EmbeddingModel string `json:"embedding_model"`
		CaptionModel   string `json:"caption_model"`
	} `json:"ai"`

	TopN int `json:"top_n"`
}

func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	} else if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults so a missing/partial config.json still runs the demo
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbName == "" {
		c.DbName = "stylist.db"
	}
	if c.SessionSecret == "" {
		// session data is signed with this key, not important for a demo
		c.SessionSecret = "dummy_key"
	}
	if c.Catalog.SourcePath == "" {
		c.Catalog.SourcePath = filepath.Join("data", "uniqlo_catalog.csv")
	}
	if c.Catalog.DownloadedPath == "" {
		c.Catalog.DownloadedPath = filepath.Join("data", "uniqlo_downloaded.csv")
	}
	if c.Catalog.ClothesDir == "" {
		c.Catalog.ClothesDir = filepath.Join("static", "images", "clothes")
	}
	if c.Catalog.ModelsDir == "" {
		c.Catalog.ModelsDir = filepath.Join("static", "images", "models")
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://api.openai.com/v1"
	}
	if c.AI.ChatModel == "" {
		c.AI.ChatModel = "gpt-4.1-mini"
	}
	if c.AI.EmbeddingModel == "" {
		c.AI.EmbeddingModel = "text-embedding-3-small"
	}
	if c.AI.CaptionModel == "" {
		c.AI.CaptionModel = "gpt-4.1-mini"
	}
	if c.TopN <= 0 {
		c.TopN = 3
	}

	return c
}
