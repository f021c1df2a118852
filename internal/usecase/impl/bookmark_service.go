package impl

import (
	"context"

	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
)

type bookmarkService struct {
	routeRepo    repository.RouteRepository
	bookmarkRepo repository.BookmarkRepository
}

// NewBookmarkService creates the bookmark usecase.
func NewBookmarkService(routeRepo repository.RouteRepository, bookmarkRepo repository.BookmarkRepository) usecase.BookmarkUsecase {
	return &bookmarkService{
		routeRepo:    routeRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func (srv *bookmarkService) AddBookmark(ctx context.Context, userID, routeID uuid.UUID) error {
	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return err
	}

	if _, err := srv.bookmarkRepo.Add(ctx, &entity.Bookmark{RouteID: routeID, UserID: userID}); err != nil {
		return errors.Wrap(err, "failed to add bookmark")
	}

	return nil
}

// RemoveBookmark succeeds whether or not the bookmark existed.
func (srv *bookmarkService) RemoveBookmark(ctx context.Context, userID, routeID uuid.UUID) error {
	if _, err := srv.bookmarkRepo.Remove(ctx, routeID, userID); err != nil {
		return errors.Wrap(err, "failed to remove bookmark")
	}

	return nil
}

func (srv *bookmarkService) IsBookmarked(ctx context.Context, userID, routeID uuid.UUID) (bool, error) {
	exists, err := srv.bookmarkRepo.Exists(ctx, routeID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check bookmark")
	}

	return exists, nil
}

func (srv *bookmarkService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.Route, error) {
	routes, err := srv.bookmarkRepo.ListRoutes(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return routes, nil
}
