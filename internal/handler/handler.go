package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/service"
)

type Handlers struct {
	Media        *MediaHandler
	Tag          *TagHandler
	Like         *LikeHandler
	Comment      *CommentHandler
	Rating       *RatingHandler
	Favorite     *FavoriteHandler
	Follow       *FollowHandler
	Notification *NotificationHandler
	Analytics    *AnalyticsHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Media:        NewMediaHandler(services.Media),
		Tag:          NewTagHandler(services.Tag),
		Like:         NewLikeHandler(services.Like),
		Comment:      NewCommentHandler(services.Comment),
		Rating:       NewRatingHandler(services.Rating),
		Favorite:     NewFavoriteHandler(services.Favorite),
		Follow:       NewFollowHandler(services.Follow),
		Notification: NewNotificationHandler(services.Notification),
		Analytics:    NewAnalyticsHandler(services.Analytics),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return domain.DefaultPagination()
	}
	params.Validate()
	return params
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}

func currentUser(c *fiber.Ctx) (domain.TokenUser, error) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return domain.TokenUser{}, middleware.Unauthorized("User not authenticated")
	}
	return user, nil
}
