package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/service"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tagService.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

func (h *TagHandler) ListByMedia(c *fiber.Ctx) error {
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	tags, err := h.tagService.ListByMedia(c.Context(), mediaID)
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

func (h *TagHandler) MediaByTag(c *fiber.Ctx) error {
	tagID, err := paramID(c, "tagId")
	if err != nil {
		return err
	}

	items, err := h.tagService.MediaByTag(c.Context(), tagID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *TagHandler) Attach(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	var input domain.AttachTagsInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(input.Tags) == 0 {
		return middleware.BadRequest("At least one tag is required")
	}

	tags, err := h.tagService.Attach(c.Context(), user, mediaID, input.Tags)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tags)
}

func (h *TagHandler) Detach(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}
	tagID, err := paramID(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.tagService.Detach(c.Context(), user, mediaID, tagID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Tag removed from media"})
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tagID, err := paramID(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.tagService.Delete(c.Context(), user, tagID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Tag deleted"})
}
