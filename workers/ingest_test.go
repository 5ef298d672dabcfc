package workers

import (
	"bytes"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"stylist/config"
	"stylist/models"
)

func testJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestRunCatalogDownloadDropsFailedRows(t *testing.T) {
	jpegBytes := testJPEG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(jpegBytes)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := config.Configuration{}
	cfg.Catalog.SourcePath = filepath.Join(dir, "catalog.csv")
	cfg.Catalog.DownloadedPath = filepath.Join(dir, "downloaded.csv")
	cfg.Catalog.ClothesDir = filepath.Join(dir, "clothes")
	cfg.Catalog.ModelsDir = filepath.Join(dir, "models")

	source := []models.CatalogItem{
		// item A: clothing image 404s, the whole row must be dropped
		{ProductID: "A", ImageLink: srv.URL + "/missing.jpg", ModelImageLink: srv.URL + "/a-model.jpg", Category: models.CategoryTops},
		// item B: both fetches succeed
		{ProductID: "B", ImageLink: srv.URL + "/b.jpg", ModelImageLink: srv.URL + "/b-model.jpg", Category: models.CategoryTops},
	}
	if err := models.SaveCatalogCSV(cfg.Catalog.SourcePath, source); err != nil {
		t.Fatalf("save source: %v", err)
	}

	if err := RunCatalogDownload(cfg); err != nil {
		t.Fatalf("RunCatalogDownload: %v", err)
	}

	downloaded, err := models.LoadCatalogCSV(cfg.Catalog.DownloadedPath)
	if err != nil {
		t.Fatalf("load downloaded: %v", err)
	}
	if len(downloaded) != 1 || downloaded[0].ProductID != "B" {
		t.Fatalf("downloaded table should contain only B, got %v", downloaded)
	}

	if _, err := os.Stat(filepath.Join(cfg.Catalog.ClothesDir, "B.jpg")); err != nil {
		t.Fatalf("B clothing image not saved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Catalog.ClothesDir, "A.jpg")); err == nil {
		t.Fatalf("A clothing image should not have been saved")
	}
}

func TestRunCatalogDownloadRejectsNonImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := config.Configuration{}
	cfg.Catalog.SourcePath = filepath.Join(dir, "catalog.csv")
	cfg.Catalog.DownloadedPath = filepath.Join(dir, "downloaded.csv")
	cfg.Catalog.ClothesDir = filepath.Join(dir, "clothes")
	cfg.Catalog.ModelsDir = filepath.Join(dir, "models")

	source := []models.CatalogItem{
		{ProductID: "A", ImageLink: srv.URL + "/a.jpg", ModelImageLink: srv.URL + "/a-model.jpg", Category: models.CategoryTops},
	}
	if err := models.SaveCatalogCSV(cfg.Catalog.SourcePath, source); err != nil {
		t.Fatalf("save source: %v", err)
	}

	if err := RunCatalogDownload(cfg); err != nil {
		t.Fatalf("RunCatalogDownload: %v", err)
	}
	downloaded, err := models.LoadCatalogCSV(cfg.Catalog.DownloadedPath)
	if err != nil {
		t.Fatalf("load downloaded: %v", err)
	}
	if len(downloaded) != 0 {
		t.Fatalf("undecodable images should drop the row, got %v", downloaded)
	}
}
