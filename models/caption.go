package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Caption is one row of the caption/embedding cache, keyed by product id.
// The embedding is stored as a JSON array in a text column.
type Caption struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ProductID string     `gorm:"not null;unique_index" json:"product_id"`
	Caption   string     `gorm:"type:text" json:"caption"`
	Embedding string     `gorm:"type:text" json:"embedding"` // JSON array (ex: [0.1,0.2,...])
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Vector decodes the stored embedding. An empty or malformed column is an
// error so callers can skip the row instead of ranking garbage.
func (c Caption) Vector() ([]float64, error) {
	if c.Embedding == "" {
		return nil, fmt.Errorf("caption %s: empty embedding", c.ProductID)
	}
	var v []float64
	if err := json.Unmarshal([]byte(c.Embedding), &v); err != nil {
		return nil, fmt.Errorf("caption %s: %w", c.ProductID, err)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("caption %s: empty embedding array", c.ProductID)
	}
	return v, nil
}

// SetVector encodes the embedding into the text column.
func (c *Caption) SetVector(v []float64) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.Embedding = string(b)
	return nil
}
