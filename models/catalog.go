package models

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Clothing categories used to partition the catalog.
const (
	CategoryTops      = "tops"
	CategoryBottoms   = "bottoms"
	CategoryOuterwear = "outerwear"
)

// CatalogItem is one row of the clothing catalog CSV.
type CatalogItem struct {
	ProductID      string `json:"product_id"`
	ImageLink      string `json:"image_link"`
	ModelImageLink string `json:"model_image_link"`
	ProductLink    string `json:"product_link"`
	Category       string `json:"category"`
}

var catalogHeader = []string{"product_id", "image_link", "model_image_link", "product_link", "category"}

// LoadCatalogCSV reads a catalog table from disk.
func LoadCatalogCSV(path string) ([]CatalogItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}

	// map header names to columns so reordered exports still load
	col := map[string]int{}
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range catalogHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("read %s: missing column %q", path, name)
		}
	}

	items := make([]CatalogItem, 0, len(records)-1)
	for _, rec := range records[1:] {
		items = append(items, CatalogItem{
			ProductID:      rec[col["product_id"]],
			ImageLink:      rec[col["image_link"]],
			ModelImageLink: rec[col["model_image_link"]],
			ProductLink:    rec[col["product_link"]],
			Category:       rec[col["category"]],
		})
	}
	return items, nil
}

// SaveCatalogCSV writes a catalog table, replacing any existing file.
func SaveCatalogCSV(path string, items []CatalogItem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(catalogHeader); err != nil {
		return err
	}
	for _, item := range items {
		rec := []string{item.ProductID, item.ImageLink, item.ModelImageLink, item.ProductLink, item.Category}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
