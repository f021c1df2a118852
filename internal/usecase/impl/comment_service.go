package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type commentService struct {
	txManager   repository.TransactionManager
	routeRepo   repository.RouteRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RouteRepo   repository.RouteRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService creates the comment usecase.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		routeRepo:   params.RouteRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *commentService) ListComments(ctx context.Context, routeID uuid.UUID, sort entity.CommentSort, viewerID *uuid.UUID) ([]*entity.Comment, error) {
	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return nil, err
	}

	if sort != entity.CommentSortLikes {
		sort = entity.CommentSortRecent
	}

	comments, err := srv.commentRepo.ListByRoute(ctx, routeID, sort, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// CreateComment stores the comment and bumps the route's comment_count in one transaction.
func (srv *commentService) CreateComment(ctx context.Context, authorID, routeID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content must not be empty")
	}

	comment := &entity.Comment{
		RouteID:  routeID,
		AuthorID: authorID,
		Content:  content,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		routeRepo := repoFactory.NewRouteRepository()

		if err := ensureRouteExists(ctx, routeRepo, routeID); err != nil {
			return err
		}

		if err := repoFactory.NewCommentRepository().Create(ctx, comment); err != nil {
			return err
		}

		_, err := routeRepo.IncrementCounter(ctx, routeID, entity.CounterComments, 1)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Comment created", slog.Any("commentID", comment.ID), slog.Any("routeID", routeID))

	return comment, nil
}

func (srv *commentService) LikeComment(ctx context.Context, userID, commentID uuid.UUID) (*usecase.LikeOutput, error) {
	if err := srv.ensureCommentExists(ctx, commentID); err != nil {
		return nil, err
	}

	if _, err := srv.commentRepo.AddLike(ctx, commentID, userID); err != nil {
		return nil, errors.Wrap(err, "failed to like comment")
	}

	return srv.likeState(ctx, commentID, true)
}

func (srv *commentService) UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (*usecase.LikeOutput, error) {
	if err := srv.ensureCommentExists(ctx, commentID); err != nil {
		return nil, err
	}

	if _, err := srv.commentRepo.RemoveLike(ctx, commentID, userID); err != nil {
		return nil, errors.Wrap(err, "failed to unlike comment")
	}

	return srv.likeState(ctx, commentID, false)
}

func (srv *commentService) IsCommentLiked(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	liked, err := srv.commentRepo.HasLike(ctx, commentID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check comment like")
	}

	return liked, nil
}

func (srv *commentService) likeState(ctx context.Context, commentID uuid.UUID, liked bool) (*usecase.LikeOutput, error) {
	count, err := srv.commentRepo.CountLikes(ctx, commentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count comment likes")
	}

	return &usecase.LikeOutput{Liked: liked, LikeCount: count}, nil
}

func (srv *commentService) ensureCommentExists(ctx context.Context, commentID uuid.UUID) error {
	if _, err := srv.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to find comment")
	}

	return nil
}

func ensureRouteExists(ctx context.Context, repo repository.RouteRepository, routeID uuid.UUID) error {
	exists, err := repo.Exists(ctx, routeID)
	if err != nil {
		return errors.Wrap(err, "failed to check route")
	}
	if !exists {
		return domainerrors.ErrRouteNotFound
	}

	return nil
}
