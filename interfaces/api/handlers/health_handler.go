package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"phototagger/domain/models"
	"phototagger/pkg/scheduler"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db          *gorm.DB
	redisClient *goredis.Client
	sched       scheduler.EventScheduler
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redisClient *goredis.Client, sched scheduler.EventScheduler) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		sched:       sched,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// DetailedHealthResponse represents detailed health check response
type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
	Metrics    map[string]interface{}     `json:"metrics,omitempty"`
}

// Health is the basic liveness probe
// @Summary Basic health check
// @Tags Health
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "Server is running",
		"service":   "PhotoTagger API",
		"timestamp": time.Now(),
	})
}

// DetailedHealth godoc
// @Summary Get detailed system health
// @Description Returns detailed health status of all system components
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} DetailedHealthResponse
// @Router /health/detailed [get]
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	response := DetailedHealthResponse{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
	}

	allHealthy := true
	hasCriticalFailure := false

	dbHealth := h.checkDatabase(ctx)
	response.Components["database"] = dbHealth
	if dbHealth.Status != "ok" {
		hasCriticalFailure = true
	}

	redisHealth := h.checkRedis(ctx)
	response.Components["redis"] = redisHealth
	if redisHealth.Status == "error" {
		allHealthy = false
	}

	schedulerHealth := h.checkScheduler()
	response.Components["scheduler"] = schedulerHealth
	if schedulerHealth.Status == "error" {
		allHealthy = false
	}

	if dbHealth.Status == "ok" {
		response.Metrics = h.collectMetrics(ctx)
	}

	if hasCriticalFailure {
		response.Status = "unhealthy"
	} else if !allHealthy {
		response.Status = "degraded"
	} else {
		response.Status = "healthy"
	}

	statusCode := fiber.StatusOK
	if response.Status == "unhealthy" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentHealth {
	start := time.Now()

	if h.db == nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Database not configured",
		}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Failed to get database connection: " + err.Error(),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Database ping failed: " + err.Error(),
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}

func (h *HealthHandler) collectMetrics(ctx context.Context) map[string]interface{} {
	metrics := make(map[string]interface{})

	var photoCount int64
	if err := h.db.WithContext(ctx).Model(&models.Photo{}).Count(&photoCount).Error; err == nil {
		metrics["total_photos"] = photoCount
	}

	var slideshowCount int64
	if err := h.db.WithContext(ctx).Model(&models.Slideshow{}).Count(&slideshowCount).Error; err == nil {
		metrics["total_slideshows"] = slideshowCount
	}

	var userCount int64
	if err := h.db.WithContext(ctx).Model(&models.User{}).Count(&userCount).Error; err == nil {
		metrics["total_users"] = userCount
	}

	if h.sched != nil {
		jobs := make(map[string]interface{})
		for id, job := range h.sched.ListJobs() {
			entry := fiber.Map{
				"cron_expr": job.CronExpr,
				"is_active": job.IsActive,
			}
			if job.NextRun != nil {
				entry["next_run"] = job.NextRun.Format(time.RFC3339)
			}
			if job.LastRun != nil {
				entry["last_run"] = job.LastRun.Format(time.RFC3339)
			}
			jobs[id] = entry
		}
		metrics["scheduled_jobs"] = jobs
	}

	return metrics
}

func (h *HealthHandler) checkScheduler() ComponentHealth {
	if h.sched == nil {
		return ComponentHealth{
			Status:  "unavailable",
			Message: "Scheduler not configured",
		}
	}

	if !h.sched.IsRunning() {
		return ComponentHealth{
			Status:  "error",
			Message: "Scheduler is not running",
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Running",
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) ComponentHealth {
	start := time.Now()

	if h.redisClient == nil {
		return ComponentHealth{
			Status:  "unavailable",
			Message: "Redis not configured, using in-memory state store",
		}
	}

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Redis ping failed: " + err.Error(),
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}
