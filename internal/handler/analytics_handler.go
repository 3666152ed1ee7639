package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) MediaRatings(c *fiber.Ctx) error {
	summaries, err := h.analyticsService.MediaRatings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

func (h *AnalyticsHandler) MediaComments(c *fiber.Ctx) error {
	summaries, err := h.analyticsService.MediaComments(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

func (h *AnalyticsHandler) UserActivity(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	activity, err := h.analyticsService.UserActivity(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(activity)
}

func (h *AnalyticsHandler) UserNotifications(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.analyticsService.UserNotificationSummary(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

func (h *AnalyticsHandler) LatestNotifications(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notifications, err := h.analyticsService.LatestNotifications(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(notifications)
}

func (h *AnalyticsHandler) LatestMedia(c *fiber.Ctx) error {
	items, err := h.analyticsService.LatestMedia(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(items)
}
