package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/service"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	favorite, err := h.favoriteService.Add(c.Context(), user, mediaID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(favorite)
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.Context(), user, mediaID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Favorite removed"})
}

func (h *FavoriteHandler) ListOwn(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.ListByUser(c.Context(), user.UserID)
	if err != nil {
		return err
	}
	return c.JSON(favorites)
}

func (h *FavoriteHandler) Count(c *fiber.Ctx) error {
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	count, err := h.favoriteService.CountByMedia(c.Context(), mediaID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}
