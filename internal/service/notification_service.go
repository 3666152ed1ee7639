package service

import (
	"context"
	"fmt"
	"log"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type NotificationService interface {
	List(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, user domain.TokenUser, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Archive(ctx context.Context, user domain.TokenUser, id int64) error

	// Notify records an engagement notification for recipientID and
	// fans out an email when one is configured. Failures are logged and
	// swallowed so the triggering write never fails on its account.
	Notify(ctx context.Context, recipientID, actorID int64, kind, text string)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	email     EmailService
}

func NewNotificationService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, email EmailService) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		email:     email,
	}
}

func (s *notificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, unreadOnly)
}

func (s *notificationService) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, user domain.TokenUser, id int64) error {
	return s.notifRepo.MarkRead(ctx, id, user.UserID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notifRepo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Archive(ctx context.Context, user domain.TokenUser, id int64) error {
	return s.notifRepo.Archive(ctx, id, user.UserID)
}

func (s *notificationService) Notify(ctx context.Context, recipientID, actorID int64, kind, text string) {
	// No notifications for acting on your own content.
	if recipientID == actorID {
		return
	}

	notif := &domain.Notification{
		UserID: recipientID,
		Text:   text,
		Type:   kind,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Printf("notification create failed: %v", err)
		return
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		log.Printf("notification recipient lookup failed: %v", err)
		return
	}

	go func() {
		if err := s.email.SendEngagementEmail(context.Background(), recipient.Email, recipient.Username, text); err != nil {
			log.Printf("notification email failed: %v", err)
		}
	}()
}

// EngagementText builds the stored notification text for an engagement.
func EngagementText(kind, title string) string {
	switch kind {
	case domain.NotificationComment:
		return fmt.Sprintf("Someone commented on %q", title)
	case domain.NotificationLike:
		return fmt.Sprintf("Someone liked %q", title)
	case domain.NotificationRating:
		return fmt.Sprintf("Someone rated %q", title)
	case domain.NotificationFollow:
		return "You have a new follower"
	default:
		return "New activity on your account"
	}
}
