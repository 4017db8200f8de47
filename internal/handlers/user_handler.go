package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/middleware"
	"github.com/inkleapp/inkle-backend/internal/services"
)

// UserHandler exposes profiles and the follow/block relationship actions.
type UserHandler struct {
	authService *services.AuthService
	relationSvc *services.RelationshipService
	visibility  *services.VisibilityService
}

func NewUserHandler(authService *services.AuthService, relationSvc *services.RelationshipService, visibility *services.VisibilityService) *UserHandler {
	return &UserHandler{authService: authService, relationSvc: relationSvc, visibility: visibility}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	viewerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	blocked, err := h.visibility.IsBlocked(viewerID, target.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if blocked {
		return respondServiceError(c, services.ErrBlocked)
	}

	return c.JSON(dto.NewUserResponse(target))
}

func (h *UserHandler) Follow(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	edge, err := h.relationSvc.Follow(userID, target.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (h *UserHandler) Unfollow(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := h.relationSvc.Unfollow(userID, target.ID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

func (h *UserHandler) Block(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	edge, err := h.relationSvc.Block(userID, target.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (h *UserHandler) Unblock(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := h.relationSvc.Unblock(userID, target.ID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unblocked"})
}
