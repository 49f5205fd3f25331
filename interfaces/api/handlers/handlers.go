package handlers

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"phototagger/domain/repositories"
	"phototagger/domain/services"
	"phototagger/infrastructure/redis"
	"phototagger/pkg/config"
	"phototagger/pkg/scheduler"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService      services.AuthService
	PhotoService     services.PhotoService
	SlideshowService services.SlideshowService
	GalleryService   services.GalleryService
}

// Repositories contains repositories needed for some handlers
type Repositories struct {
	UserRepository repositories.UserRepository
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler      *AuthHandler
	PhotoHandler     *PhotoHandler
	SlideshowHandler *SlideshowHandler
	GalleryHandler   *GalleryHandler
	HealthHandler    *HealthHandler
	LogHandler       *LogHandler

	// Short accessors for routes
	Auth      *AuthHandler
	Photo     *PhotoHandler
	Slideshow *SlideshowHandler
	Gallery   *GalleryHandler
	Health    *HealthHandler
	Log       *LogHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services, repos *Repositories, db *gorm.DB, redisClient *goredis.Client, stateStore redis.StateStore, sched scheduler.EventScheduler, cfg *config.Config) *Handlers {
	authHandler := NewAuthHandler(services.AuthService, stateStore, cfg)
	photoHandler := NewPhotoHandler(services.PhotoService)
	slideshowHandler := NewSlideshowHandler(services.SlideshowService)
	galleryHandler := NewGalleryHandler(services.GalleryService)
	healthHandler := NewHealthHandler(db, redisClient, sched)
	logHandler := NewLogHandler(cfg)

	return &Handlers{
		AuthHandler:      authHandler,
		PhotoHandler:     photoHandler,
		SlideshowHandler: slideshowHandler,
		GalleryHandler:   galleryHandler,
		HealthHandler:    healthHandler,
		LogHandler:       logHandler,

		// Short accessors
		Auth:      authHandler,
		Photo:     photoHandler,
		Slideshow: slideshowHandler,
		Gallery:   galleryHandler,
		Health:    healthHandler,
		Log:       logHandler,
	}
}
