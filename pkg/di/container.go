package di

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"phototagger/application/serviceimpl"
	"phototagger/domain/repositories"
	"phototagger/domain/services"
	"phototagger/infrastructure/googlephotos"
	"phototagger/infrastructure/oauth"
	"phototagger/infrastructure/postgres"
	"phototagger/infrastructure/redis"
	"phototagger/interfaces/api/handlers"
	"phototagger/pkg/config"
	"phototagger/pkg/logger"
	"phototagger/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *goredis.Client
	StateStore     redis.StateStore
	EventScheduler scheduler.EventScheduler
	GoogleOAuth    *oauth.GoogleOAuth
	PhotosClient   *googlephotos.PhotosClient

	// Repositories
	UserRepository      repositories.UserRepository
	PhotoRepository     repositories.PhotoRepository
	SlideshowRepository repositories.SlideshowRepository
	GalleryRepository   repositories.GalleryRepository

	// Services
	AuthService      services.AuthService
	PhotoService     services.PhotoService
	SlideshowService services.SlideshowService
	GalleryService   services.GalleryService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	// Initialize Redis. The OAuth state store falls back to memory when
	// Redis is unreachable so a missing Redis never blocks login.
	redisClient, err := redis.NewClient(c.Config.Redis)
	if err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis unavailable, using in-memory state store", map[string]interface{}{"error": err.Error()})
		c.StateStore = redis.NewMemoryStateStore()
	} else {
		c.RedisClient = redisClient
		c.StateStore = redis.NewRedisStateStore(redisClient)
		logger.Startup("redis_connected", "Redis connected", nil)
	}

	// Initialize Google OAuth
	c.GoogleOAuth = oauth.NewGoogleOAuth(c.Config.Google)
	if err := c.GoogleOAuth.ValidateConfig(); err != nil {
		logger.StartupWarn("google_oauth_not_configured", "Google OAuth not configured", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("google_oauth_initialized", "Google OAuth initialized", nil)
	}

	// Initialize Google Photos client
	c.PhotosClient = googlephotos.NewPhotosClient(c.Config.Google)
	if err := c.PhotosClient.ValidateConfig(); err != nil {
		logger.StartupWarn("google_photos_not_configured", "Google Photos not configured", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("google_photos_initialized", "Google Photos client initialized", nil)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.PhotoRepository = postgres.NewPhotoRepository(c.DB)
	c.SlideshowRepository = postgres.NewSlideshowRepository(c.DB)
	c.GalleryRepository = postgres.NewGalleryRepository(c.DB)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
	return nil
}

func (c *Container) initServices() error {
	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.GoogleOAuth, c.Config.JWT.Secret)
	c.PhotoService = serviceimpl.NewPhotoService(c.PhotoRepository, c.PhotosClient)
	c.SlideshowService = serviceimpl.NewSlideshowService(c.SlideshowRepository, c.PhotosClient)
	c.GalleryService = serviceimpl.NewGalleryService(c.GalleryRepository)
	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Startup("scheduler_started", "Event scheduler started", nil)

	c.scheduleLogPruning()
	return nil
}

// scheduleLogPruning removes log files past the retention window once a day
func (c *Container) scheduleLogPruning() {
	retention := time.Duration(c.Config.Logs.RetentionDays) * 24 * time.Hour

	err := c.EventScheduler.AddJob("log-pruning", "0 3 * * *", func() {
		removed, err := logger.PruneOldFiles(retention)
		if err != nil {
			logger.SchedulerError("log_prune_failed", "Log pruning job failed", err, nil)
			return
		}
		if removed > 0 {
			logger.Scheduler("log_prune_done", "Pruned old log files", map[string]interface{}{
				"removed":        removed,
				"retention_days": c.Config.Logs.RetentionDays,
			})
		}
	})

	if err != nil {
		logger.StartupWarn("log_prune_schedule_failed", "Failed to schedule log pruning job", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("log_prune_scheduled", "Log pruning job scheduled (daily)", nil)
	}
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	// Stop scheduler
	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Startup("scheduler_stopped", "Event scheduler stopped", nil)
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("redis_closed", "Redis connection closed", nil)
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.StartupWarn("db_close_failed", "Failed to close database connection", map[string]interface{}{"error": err.Error()})
			} else {
				logger.Startup("db_closed", "Database connection closed", nil)
			}
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:      c.AuthService,
		PhotoService:     c.PhotoService,
		SlideshowService: c.SlideshowService,
		GalleryService:   c.GalleryService,
	}
}

func (c *Container) GetHandlerRepositories() *handlers.Repositories {
	return &handlers.Repositories{
		UserRepository: c.UserRepository,
	}
}
