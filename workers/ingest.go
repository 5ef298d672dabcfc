package workers

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"stylist/config"
	"stylist/models"
)

// RunCatalogDownload fetches both images for every row of the source catalog
// and persists the surviving rows as the downloaded table. A failed fetch for
// either image drops the row and the batch continues; nothing is retried.
func RunCatalogDownload(cfg config.Configuration) error {
	items, err := models.LoadCatalogCSV(cfg.Catalog.SourcePath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	for _, dir := range []string{cfg.Catalog.ClothesDir, cfg.Catalog.ModelsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	client := &http.Client{Timeout: 30 * time.Second}

	kept := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		clothing, err := fetchImage(client, item.ImageLink)
		if err != nil {
			log.Printf("ingest: product %s: clothing image: %v, dropping row", item.ProductID, err)
			continue
		}
		model, err := fetchImage(client, item.ModelImageLink)
		if err != nil {
			log.Printf("ingest: product %s: model image: %v, dropping row", item.ProductID, err)
			continue
		}

		name := item.ProductID + ".jpg"
		if err := saveJPEG(filepath.Join(cfg.Catalog.ClothesDir, name), clothing); err != nil {
			log.Printf("ingest: product %s: save clothing image: %v, dropping row", item.ProductID, err)
			continue
		}
		if err := saveJPEG(filepath.Join(cfg.Catalog.ModelsDir, name), model); err != nil {
			log.Printf("ingest: product %s: save model image: %v, dropping row", item.ProductID, err)
			continue
		}

		kept = append(kept, item)
	}

	if err := models.SaveCatalogCSV(cfg.Catalog.DownloadedPath, kept); err != nil {
		return fmt.Errorf("save downloaded table: %w", err)
	}
	log.Printf("ingest: downloaded %d/%d catalog items to %s", len(kept), len(items), cfg.Catalog.DownloadedPath)
	return nil
}

// fetchImage GETs an image URL and decodes it, so a broken download never
// makes it to disk.
func fetchImage(client *http.Client, url string) (image.Image, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

func saveJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, nil)
}
