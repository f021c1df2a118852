package postgres

import (
	"context"
	"time"

	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentRow is a comment joined with its like count.
type commentRow struct {
	ID        uuid.UUID
	RouteID   uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
	LikeCount int
}

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:       comment.ID,
		RouteID:  comment.RouteID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	}
	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return &entity.Comment{
		ID:        commentM.ID,
		RouteID:   commentM.RouteID,
		AuthorID:  commentM.AuthorID,
		Content:   commentM.Content,
		CreatedAt: commentM.CreatedAt,
	}, nil
}

// ListByRoute counts likes in a correlated subquery and resolves LikedByMe with one extra query.
func (repo *commentRepository) ListByRoute(ctx context.Context, routeID uuid.UUID, sort entity.CommentSort, viewerID *uuid.UUID) ([]*entity.Comment, error) {
	order := "c.created_at DESC"
	if sort == entity.CommentSortLikes {
		order = "like_count DESC, c.created_at DESC"
	}

	db := repo.db.WithContext(ctx)

	var rows []commentRow
	err := db.Table("comments AS c").
		Select("c.id, c.route_id, c.author_id, c.content, c.created_at, " +
			"(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS like_count").
		Where("c.route_id = ?", routeID).
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	liked := make(map[uuid.UUID]bool)
	if viewerID != nil && len(rows) > 0 {
		ids := make([]uuid.UUID, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}

		var likedIDs []uuid.UUID
		err := db.Model(&model.CommentLikeModel{}).
			Where("user_id = ? AND comment_id IN ?", *viewerID, ids).
			Pluck("comment_id", &likedIDs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to load comment likes")
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, &entity.Comment{
			ID:        row.ID,
			RouteID:   row.RouteID,
			AuthorID:  row.AuthorID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			LikeCount: row.LikeCount,
			LikedByMe: liked[row.ID],
		})
	}

	return comments, nil
}

func (repo *commentRepository) AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CommentLikeModel{CommentID: commentID, UserID: userID})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to like comment")
	}

	return result.RowsAffected > 0, nil
}

func (repo *commentRepository) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLikeModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to unlike comment")
	}

	return result.RowsAffected > 0, nil
}

func (repo *commentRepository) HasLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.CommentLikeModel{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check comment like")
	}

	return count > 0, nil
}

func (repo *commentRepository) CountLikes(ctx context.Context, commentID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.CommentLikeModel{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count comment likes")
	}

	return int(count), nil
}
