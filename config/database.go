package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Savin-AS94/hw05-final/models"
)

func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("database connected")
	return db
}

// Migrate creates the schema. Referential integrity (cascade on author
// delete, set-null on group delete, unique follow pairs) lives in the model
// constraint tags, the store enforces it.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
}
