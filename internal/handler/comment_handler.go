package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentRequest struct {
	CommentText string `json:"comment_text"`
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.commentService.Create(c.Context(), user, mediaID, req.CommentText)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) ListByMedia(c *fiber.Ctx) error {
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByMedia(c.Context(), mediaID)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Count(c *fiber.Ctx) error {
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	count, err := h.commentService.CountByMedia(c.Context(), mediaID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.commentService.Update(c.Context(), user, commentID, req.CommentText)
	if err != nil {
		return err
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Context(), user, commentID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
