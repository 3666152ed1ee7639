package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type mockMediaRepository struct {
	mock.Mock
}

func (m *mockMediaRepository) Create(ctx context.Context, media *domain.MediaItem) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *mockMediaRepository) GetByID(ctx context.Context, id int64) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *mockMediaRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.MediaItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaRepository) ListByUser(ctx context.Context, userID int64) ([]domain.MediaItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaRepository) ListFollowed(ctx context.Context, followerID int64, params domain.PaginationParams) ([]domain.MediaItem, error) {
	args := m.Called(ctx, followerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaRepository) MostLiked(ctx context.Context) (*domain.MediaItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *mockMediaRepository) Search(ctx context.Context, field domain.SearchField, term string, params domain.PaginationParams) ([]domain.MediaItem, error) {
	args := m.Called(ctx, field, term, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaRepository) Update(ctx context.Context, id int64, input domain.UpdateMediaInput, actor domain.TokenUser) error {
	args := m.Called(ctx, id, input, actor)
	return args.Error(0)
}

func (m *mockMediaRepository) DeleteCascade(ctx context.Context, id int64, actor domain.TokenUser) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

type mockAssetDeleter struct {
	mock.Mock
}

func (m *mockAssetDeleter) DeleteAsset(ctx context.Context, filename, bearerToken string) error {
	args := m.Called(ctx, filename, bearerToken)
	return args.Error(0)
}
