package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/service"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	followedID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	follow, err := h.followService.Follow(c.Context(), user, followedID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

func (h *FollowHandler) Unfollow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	followedID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(c.Context(), user, followedID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

func (h *FollowHandler) Followers(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	follows, err := h.followService.Followers(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(follows)
}

func (h *FollowHandler) Following(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	follows, err := h.followService.Following(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(follows)
}
