package recommend

import (
	"fmt"

	"stylist/models"

	"github.com/jinzhu/gorm"
)

// DBCaptions reads the caption cache from the database in table order.
type DBCaptions struct {
	DB *gorm.DB
}

func (s DBCaptions) List() ([]models.Caption, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database not configured")
	}
	var rows []models.Caption
	if err := s.DB.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
