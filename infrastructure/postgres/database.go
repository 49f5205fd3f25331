package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"phototagger/domain/models"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	// TranslateError lets callers detect duplicate-key inserts with
	// errors.Is(err, gorm.ErrDuplicatedKey).
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Slideshow{},
		&models.GalleryImage{},
	); err != nil {
		return fmt.Errorf("failed to run auto migrations: %v", err)
	}

	// Indexes AutoMigrate cannot express
	migrations := []string{
		// Tag search walks the jsonb array with a regex match
		`CREATE INDEX IF NOT EXISTS idx_photos_custom_tags ON photos USING gin (custom_tags jsonb_path_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_gallery_images_owner_url ON gallery_images(owner_email, image_url)`,
	}

	for _, sql := range migrations {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("migration failed: %s, error: %v", sql[:50], err)
		}
	}

	return nil
}
