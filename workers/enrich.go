package workers

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"stylist/config"
	"stylist/models"

	"github.com/jinzhu/gorm"
)

const clothingCaptionPrompt = `The provided image is of a piece of clothing.

Provide a precisely one-sentence-long caption which describes the item.
The description should include color, material, and style.

Be succinct, terse, and direct in the caption.`

// Captioner is the slice of the platform client the enrichment batch needs.
type Captioner interface {
	CaptionImage(ctx context.Context, jpeg []byte, prompt string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// RunCaptionEnrichment captions every downloaded clothing image, embeds each
// caption, and upserts the (product id, caption, embedding) rows. Per-item
// failures are logged and skipped so one bad image never kills the batch.
func RunCaptionEnrichment(cfg config.Configuration, dbConn *gorm.DB, ai Captioner) error {
	items, err := models.LoadCatalogCSV(cfg.Catalog.DownloadedPath)
	if err != nil {
		return fmt.Errorf("load downloaded table: %w (run `stylist ingest` first)", err)
	}

	enriched := 0
	for _, item := range items {
		path := filepath.Join(cfg.Catalog.ClothesDir, item.ProductID+".jpg")
		jpegBytes, err := os.ReadFile(path)
		if err != nil {
			log.Printf("enrich: product %s: %v, skipping", item.ProductID, err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		caption, err := ai.CaptionImage(ctx, jpegBytes, clothingCaptionPrompt)
		if err != nil {
			cancel()
			log.Printf("enrich: product %s: caption: %v, skipping", item.ProductID, err)
			continue
		}
		vector, err := ai.EmbedText(ctx, caption)
		cancel()
		if err != nil {
			log.Printf("enrich: product %s: embed: %v, skipping", item.ProductID, err)
			continue
		}

		if err := upsertCaption(dbConn, item.ProductID, caption, vector); err != nil {
			log.Printf("enrich: product %s: store: %v, skipping", item.ProductID, err)
			continue
		}
		enriched++
	}

	log.Printf("enrich: cached captions for %d/%d items", enriched, len(items))
	return nil
}

func upsertCaption(dbConn *gorm.DB, productID, caption string, vector []float64) error {
	row := models.Caption{ProductID: productID, Caption: caption}
	if err := row.SetVector(vector); err != nil {
		return err
	}

	var existing models.Caption
	err := dbConn.Where("product_id = ?", productID).First(&existing).Error
	if err == nil {
		return dbConn.Model(&existing).Updates(map[string]any{
			"caption":   row.Caption,
			"embedding": row.Embedding,
		}).Error
	}
	if !gorm.IsRecordNotFoundError(err) {
		return err
	}
	return dbConn.Create(&row).Error
}
