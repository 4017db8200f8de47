package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/cache"
	"github.com/inkleapp/inkle-backend/internal/database"
	"github.com/inkleapp/inkle-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	cacheStatus := "disabled"
	if cache.Client != nil {
		cacheStatus = "ok"
		if err := cache.Client.Ping(c.Context()).Err(); err != nil {
			cacheStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Cache:     cacheStatus,
	})
}
