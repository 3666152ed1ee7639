package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/service"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type rateRequest struct {
	RatingValue int `json:"rating_value"`
}

func (h *RatingHandler) Rate(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	var req rateRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	rating, err := h.ratingService.Rate(c.Context(), user, mediaID, req.RatingValue)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

func (h *RatingHandler) Remove(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.ratingService.Remove(c.Context(), user, mediaID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Rating removed"})
}

func (h *RatingHandler) Average(c *fiber.Ctx) error {
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}

	avg, err := h.ratingService.AverageByMedia(c.Context(), mediaID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"average": avg})
}

func (h *RatingHandler) ListOwn(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	ratings, err := h.ratingService.ListByUser(c.Context(), user.UserID)
	if err != nil {
		return err
	}
	return c.JSON(ratings)
}
