package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/service"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) Add(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	like, err := h.likeService.Like(c.Context(), user, mediaID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

func (h *LikeHandler) Remove(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.likeService.Unlike(c.Context(), user, mediaID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Like removed"})
}

func (h *LikeHandler) Count(c *fiber.Ctx) error {
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	count, err := h.likeService.CountByMedia(c.Context(), mediaID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *LikeHandler) ListOwn(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	likes, err := h.likeService.ListByUser(c.Context(), user.UserID)
	if err != nil {
		return err
	}
	return c.JSON(likes)
}

func (h *LikeHandler) HasLiked(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	liked, err := h.likeService.HasLiked(c.Context(), user, mediaID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"liked": liked})
}
