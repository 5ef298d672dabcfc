package db

import (
	"fmt"

	"stylist/config"
	"stylist/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect opens the database (sqlite3 by default) and migrates the caption
// cache and feedback tables.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
			conf.DbHost, conf.DbPort, conf.DbUser, conf.DbName, conf.DbPass,
		)
		db, err = gorm.Open("postgres", dsn)
	} else {
		name := conf.DbName
		if name == "" {
			name = "stylist.db"
		}
		db, err = gorm.Open("sqlite3", name)
	}
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(
		&models.Caption{},
		&models.Feedback{},
	)

	return db, nil
}
