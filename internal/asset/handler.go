package asset

import (
	"context"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/middleware"
)

type Handler struct {
	service *Service
}

type ingestFunc func(ctx context.Context, userID int64, originalName, mimeType string, r io.Reader) (*domain.UploadData, error)

type deleteFunc func(user domain.TokenUser, filename string) error

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *fiber.Ctx) error {
	return h.upload(c, h.service.Ingest)
}

func (h *Handler) UploadProfile(c *fiber.Ctx) error {
	return h.upload(c, h.service.IngestProfile)
}

func (h *Handler) upload(c *fiber.Ctx, ingest ingestFunc) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unreadable file")
	}
	defer f.Close()

	mimeType := fileHeader.Header.Get("Content-Type")

	data, err := ingest(c.Context(), user.UserID, fileHeader.Filename, mimeType, f)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(domain.UploadResponse{
		Message: "File uploaded",
		Data:    *data,
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	return h.delete(c, h.service.Delete)
}

func (h *Handler) DeleteProfile(c *fiber.Ctx) error {
	return h.delete(c, h.service.DeleteProfile)
}

func (h *Handler) delete(c *fiber.Ctx, remove deleteFunc) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	filename, err := url.PathUnescape(c.Params("filename"))
	if err != nil || filename == "" {
		return middleware.BadRequest("Invalid filename")
	}

	if err := remove(user, filename); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "File deleted"})
}
