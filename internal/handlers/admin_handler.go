package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/middleware"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/inkleapp/inkle-backend/internal/services"
)

// AdminHandler carries the privileged moderation panel. Routes are behind
// the role gate; the handler re-resolves the caller because target-role
// checks and activity attribution need the full user record. Operator-token
// requests resolve to a nil actor.
type AdminHandler struct {
	adminService      *services.AdminService
	authService       *services.AuthService
	postService       *services.PostService
	moderationService *services.ModerationService
}

func NewAdminHandler(adminService *services.AdminService, authService *services.AuthService, postService *services.PostService, moderationService *services.ModerationService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		authService:       authService,
		postService:       postService,
		moderationService: moderationService,
	}
}

func (h *AdminHandler) DeletePost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	if err := h.postService.Delete(postID, h.actor(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post marked deleted"})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := h.adminService.DeleteUser(h.actor(c), target); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *AdminHandler) Promote(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := h.adminService.Promote(target); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": target.Username + " promoted to admin"})
}

func (h *AdminHandler) Demote(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := h.adminService.Demote(target); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": target.Username + " demoted from admin"})
}

func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.moderationService.ListReports(status, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *AdminHandler) ActionReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ActionReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.moderationService.ActionReport(reportID, &req); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report updated"})
}

// actor resolves the calling user, or nil for operator-token requests.
func (h *AdminHandler) actor(c *fiber.Ctx) *models.User {
	userID, err := middleware.UserID(c)
	if err != nil {
		return nil
	}
	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		return nil
	}
	return user
}
