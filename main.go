package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"stylist/config"
	"stylist/controllers"
	"stylist/db"
	"stylist/models"
	"stylist/recommend"
	"stylist/router"
	"stylist/tools"
	"stylist/workers"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
)

// Usage:
//
//	stylist [-config config.json] serve    run the demo web app (default)
//	stylist [-config config.json] ingest   download catalog images, write the downloaded table
//	stylist [-config config.json] enrich   caption + embed downloaded images into the cache
func main() {
	// API key comes from the environment; a .env file is enough for dev.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	configPath := flag.String("config", "config.json", "path to JSON config file")
	flag.Parse()

	cfg := config.Get(*configPath)
	setupLogFile(cfg.LogPath)

	ai := tools.NewOpenAI(
		os.Getenv("OPENAI_API_KEY"),
		cfg.AI.BaseURL,
		cfg.AI.ChatModel,
		cfg.AI.EmbeddingModel,
		cfg.AI.CaptionModel,
	)

	switch flag.Arg(0) {
	case "ingest":
		if err := workers.RunCatalogDownload(cfg); err != nil {
			log.Fatalf("ingest: %v", err)
		}

	case "enrich":
		database := mustConnect(cfg)
		defer database.Close()
		if err := workers.RunCaptionEnrichment(cfg, database, ai); err != nil {
			log.Fatalf("enrich: %v", err)
		}

	case "", "serve":
		serve(cfg, ai)

	default:
		log.Fatalf("unknown command %q (want serve, ingest or enrich)", flag.Arg(0))
	}
}

func serve(cfg config.Configuration, ai *tools.OpenAI) {
	database := mustConnect(cfg)
	defer database.Close()

	// The downloaded table is loaded once; without it the engine degrades
	// to "no recommendations" instead of failing the server.
	items, err := models.LoadCatalogCSV(cfg.Catalog.DownloadedPath)
	if err != nil {
		log.Printf("no %s found, run `stylist ingest` first: %v", cfg.Catalog.DownloadedPath, err)
	}

	engine := recommend.NewEngine(ai, recommend.DBCaptions{DB: database}, items, cfg.TopN)
	app := controllers.NewApp(engine, items, cfg.TopN)

	r := gin.New()
	router.Initialize(r, cfg, database, app)

	log.Printf("stylist listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal(err)
	}
}

func mustConnect(cfg config.Configuration) *gorm.DB {
	db.SetConfigurations(cfg)
	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	return conn
}

func setupLogFile(path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("log file: %v", err)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
}
