package service

import (
	"context"
	"fmt"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, user domain.TokenUser, mediaID int64, text string) (*domain.Comment, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.Comment, error)
	CountByMedia(ctx context.Context, mediaID int64) (int64, error)
	Update(ctx context.Context, user domain.TokenUser, id int64, text string) (*domain.Comment, error)
	Delete(ctx context.Context, user domain.TokenUser, id int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	mediaRepo   repository.MediaRepository
	notifs      NotificationService
}

func NewCommentService(commentRepo repository.CommentRepository, mediaRepo repository.MediaRepository, notifs NotificationService) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		mediaRepo:   mediaRepo,
		notifs:      notifs,
	}
}

func (s *commentService) Create(ctx context.Context, user domain.TokenUser, mediaID int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text is required: %w", domain.ErrInvalidInput)
	}

	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		MediaID: mediaID,
		UserID:  user.UserID,
		Text:    text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.notifs.Notify(ctx, media.UserID, user.UserID,
		domain.NotificationComment, EngagementText(domain.NotificationComment, media.Title))

	return comment, nil
}

func (s *commentService) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Comment, error) {
	return s.commentRepo.ListByMedia(ctx, mediaID)
}

func (s *commentService) CountByMedia(ctx context.Context, mediaID int64) (int64, error) {
	return s.commentRepo.CountByMedia(ctx, mediaID)
}

func (s *commentService) Update(ctx context.Context, user domain.TokenUser, id int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text is required: %w", domain.ErrInvalidInput)
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanModify(comment.UserID) {
		return nil, fmt.Errorf("not the author of comment %d: %w", id, domain.ErrForbidden)
	}

	if err := s.commentRepo.Update(ctx, id, text); err != nil {
		return nil, err
	}
	comment.Text = text
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, user domain.TokenUser, id int64) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanModify(comment.UserID) {
		return fmt.Errorf("not the author of comment %d: %w", id, domain.ErrForbidden)
	}

	return s.commentRepo.Delete(ctx, id)
}
