package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"phototagger/pkg/logger"
)

// LoggerMiddleware logs each request to the api category
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := map[string]interface{}{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
			"ip":       c.IP(),
		}

		if err != nil {
			logger.Error(logger.CategoryAPI, "request", "Request failed", err, fields)
			return err
		}

		logger.API("request", "Request handled", fields)
		return nil
	}
}
