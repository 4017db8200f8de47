package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/config"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/middleware"
	"github.com/inkleapp/inkle-backend/internal/services"
)

type PostHandler struct {
	postService *services.PostService
	authService *services.AuthService
	cfg         *config.Config
}

func NewPostHandler(postService *services.PostService, authService *services.AuthService, cfg *config.Config) *PostHandler {
	return &PostHandler{postService: postService, authService: authService, cfg: cfg}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	post, err := h.postService.Create(userID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	post, err := h.postService.Get(userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// Delete soft-deletes the caller's own post; admins may delete any post
// through this route as well.
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	actor, err := h.authService.GetUserByID(userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := h.postService.Delete(postID, actor); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *PostHandler) Like(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	like, err := h.postService.Like(userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	if err := h.postService.Unlike(userID, postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unliked"})
}

func (h *PostHandler) Feed(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := h.parseLimit(c)
	posts, err := h.postService.Feed(&userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

func (h *PostHandler) parseLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(h.cfg.FeedDefaultLimit)))
	if err != nil || limit <= 0 {
		limit = h.cfg.FeedDefaultLimit
	}
	if limit > h.cfg.FeedMaxLimit {
		limit = h.cfg.FeedMaxLimit
	}
	return limit
}
