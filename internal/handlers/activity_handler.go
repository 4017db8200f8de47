package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/config"
	"github.com/inkleapp/inkle-backend/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
	cfg             *config.Config
}

func NewActivityHandler(activityService *services.ActivityService, cfg *config.Config) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, cfg: cfg}
}

// Global returns the unfiltered audit stream, newest first.
func (h *ActivityHandler) Global(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(h.cfg.FeedDefaultLimit)))
	if err != nil || limit <= 0 {
		limit = h.cfg.FeedDefaultLimit
	}
	if limit > h.cfg.FeedMaxLimit {
		limit = h.cfg.FeedMaxLimit
	}

	entries, err := h.activityService.GlobalFeed(c.Context(), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entries)
}
