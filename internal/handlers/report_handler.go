package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/middleware"
	"github.com/inkleapp/inkle-backend/internal/services"
)

type ReportHandler struct {
	moderationService *services.ModerationService
}

func NewReportHandler(moderationService *services.ModerationService) *ReportHandler {
	return &ReportHandler{moderationService: moderationService}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.moderationService.CreateReport(userID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}
