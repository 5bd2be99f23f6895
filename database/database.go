package database

import (
	"os"

	"studio-app/internal/domain/artists"
	"studio-app/internal/domain/artworks"
	"studio-app/internal/domain/commissions"
	"studio-app/internal/domain/contacts"
	"studio-app/internal/domain/invoices"
	"studio-app/internal/domain/shipments"
	"studio-app/internal/domain/visits"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(log *logrus.Logger) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	DB = db

	// uuid defaults on primary keys
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.WithError(err).Fatal("Failed to enable pgcrypto extension")
	}

	if err := DB.AutoMigrate(
		&artists.Artist{},

		&artworks.Row{},
		&commissions.Row{},
		&invoices.Row{},
		&contacts.Row{},
		&visits.Row{},
		&shipments.Row{},
	); err != nil {
		log.WithError(err).Fatal("AutoMigrate error")
	}

	log.Info("Connected and migrated successfully")
}
