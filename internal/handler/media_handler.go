package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	items, err := h.mediaService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	media, err := h.mediaService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(media)
}

func (h *MediaHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.mediaService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *MediaHandler) ListOwn(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.mediaService.ListByUser(c.Context(), user.UserID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *MediaHandler) ListFollowed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.mediaService.ListFollowed(c.Context(), user.UserID, getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *MediaHandler) MostLiked(c *fiber.Ctx) error {
	media, err := h.mediaService.MostLiked(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(media)
}

func (h *MediaHandler) Search(c *fiber.Ctx) error {
	items, err := h.mediaService.Search(c.Context(),
		c.Query("searchBy"), c.Query("search"), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *MediaHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input domain.CreateMediaInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	media, err := h.mediaService.Create(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Media created",
		"media_id": media.ID,
	})
}

func (h *MediaHandler) Update(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateMediaInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	media, err := h.mediaService.Update(c.Context(), user, id, input)
	if err != nil {
		return err
	}
	return c.JSON(media)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.mediaService.Delete(c.Context(), user, id, middleware.GetBearerToken(c)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Media deleted"})
}
