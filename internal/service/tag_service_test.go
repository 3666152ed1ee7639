package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/service"
)

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *mockTagRepository) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *mockTagRepository) MediaByTag(ctx context.Context, tagID int64) ([]domain.MediaItem, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockTagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *mockTagRepository) Attach(ctx context.Context, tagID, mediaID int64) error {
	return m.Called(ctx, tagID, mediaID).Error(0)
}

func (m *mockTagRepository) Detach(ctx context.Context, tagID, mediaID int64) error {
	return m.Called(ctx, tagID, mediaID).Error(0)
}

func (m *mockTagRepository) Delete(ctx context.Context, tagID int64) error {
	return m.Called(ctx, tagID).Error(0)
}

func TestTagServiceAttach(t *testing.T) {
	ctx := context.Background()
	owner := domain.TokenUser{UserID: 7, LevelName: domain.LevelUser}
	stored := &domain.MediaItem{ID: 42, UserID: 7, Filename: "abc_7.jpg", MediaType: "image/jpeg"}

	t.Run("trims names and links each tag", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		mediaRepo := new(mockMediaRepository)
		svc := service.NewTagService(tagRepo, mediaRepo, testConfig())

		mediaRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()
		tagRepo.On("GetOrCreate", ctx, "nature").Return(&domain.Tag{ID: 1, Name: "nature"}, nil).Once()
		tagRepo.On("Attach", ctx, int64(1), int64(42)).Return(nil).Once()
		tagRepo.On("GetOrCreate", ctx, "sunset").Return(&domain.Tag{ID: 2, Name: "sunset"}, nil).Once()
		tagRepo.On("Attach", ctx, int64(2), int64(42)).Return(nil).Once()

		tags, err := svc.Attach(ctx, owner, 42, []string{" nature ", "sunset"})
		require.NoError(t, err)
		assert.Len(t, tags, 2)
		tagRepo.AssertExpectations(t)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		mediaRepo := new(mockMediaRepository)
		svc := service.NewTagService(tagRepo, mediaRepo, testConfig())

		mediaRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()

		_, err := svc.Attach(ctx, owner, 42, []string{"   "})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		tagRepo.AssertNotCalled(t, "GetOrCreate")
	})

	t.Run("non-owner may not tag", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		mediaRepo := new(mockMediaRepository)
		svc := service.NewTagService(tagRepo, mediaRepo, testConfig())

		stranger := domain.TokenUser{UserID: 8, LevelName: domain.LevelUser}
		mediaRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()

		_, err := svc.Attach(ctx, stranger, 42, []string{"nature"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestTagServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		svc := service.NewTagService(tagRepo, new(mockMediaRepository), testConfig())

		user := domain.TokenUser{UserID: 7, LevelName: domain.LevelUser}
		err := svc.Delete(ctx, user, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		tagRepo.AssertNotCalled(t, "Delete")

		admin := domain.TokenUser{UserID: 1, LevelName: domain.LevelAdmin}
		tagRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
		require.NoError(t, svc.Delete(ctx, admin, 1))
	})
}
