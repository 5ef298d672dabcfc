package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	items := []CatalogItem{
		{ProductID: "101", ImageLink: "http://x/101.jpg", ModelImageLink: "http://x/m101.jpg", ProductLink: "http://shop/101", Category: CategoryTops},
		{ProductID: "102", ImageLink: "http://x/102.jpg", ModelImageLink: "http://x/m102.jpg", ProductLink: "http://shop/102", Category: CategoryBottoms},
	}

	if err := SaveCatalogCSV(path, items); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadCatalogCSV(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != items[0] || got[1] != items[1] {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestLoadCatalogCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte("product_id,image_link\n1,http://x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogCSV(path); err == nil {
		t.Fatalf("want error for missing columns")
	}
}

func TestLoadCatalogCSVMissingFile(t *testing.T) {
	if _, err := LoadCatalogCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("want error for missing file")
	}
}
