package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryBool("unread")
	notifications, err := h.notificationService.List(c.Context(), user.UserID, unreadOnly)
	if err != nil {
		return err
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) CountUnread(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := h.notificationService.CountUnread(c.Context(), user.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notificationID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkRead(c.Context(), user, notificationID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkAllRead(c.Context(), user.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) Archive(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notificationID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.Archive(c.Context(), user, notificationID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Notification archived"})
}
