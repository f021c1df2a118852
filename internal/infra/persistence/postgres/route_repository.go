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

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var routeOrders = map[entity.RouteSort]string{
	entity.RouteSortLatest:   "routes.created_at DESC",
	entity.RouteSortPopular:  "(routes.like_count * 2 + routes.comment_count) DESC, routes.created_at DESC",
	entity.RouteSortComments: "routes.comment_count DESC, routes.created_at DESC",
	entity.RouteSortOpens:    "routes.open_count DESC, routes.created_at DESC",
}

var counterColumns = map[entity.CounterField]bool{
	entity.CounterLikes:    true,
	entity.CounterComments: true,
	entity.CounterOpens:    true,
}

// routeRepository implements the domain.RouteRepository interface using GORM.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// Create inserts the route row and then its points in one transaction.
func (repo *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)
	if routeM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.WithStack(err)
		}
		routeM.ID = id
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(routeM).Error; err != nil {
			return err
		}

		return insertPoints(tx, routeM.ID, route.Points)
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// FindByID returns the route with its points ordered by seq.
func (repo *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	var routeM model.RouteModel
	err := repo.db.WithContext(ctx).
		Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("id = ?", id).
		First(&routeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by id")
	}

	return toRouteDomain(&routeM), nil
}

func (repo *routeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RouteModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check route")
	}

	return count > 0, nil
}

// List applies the region and tag filters, the sort order and pagination. Points are not loaded.
func (repo *routeRepository) List(ctx context.Context, filter entity.RouteFilter) ([]*entity.Route, error) {
	query := repo.db.WithContext(ctx).Model(&model.RouteModel{})
	if filter.Region1 != "" {
		query = query.Where("routes.region1 = ?", filter.Region1)
	}
	if filter.Tag != 0 {
		query = query.Where("(routes.tags_bitmask & ?) <> 0", filter.Tag)
	}

	order, ok := routeOrders[filter.Sort]
	if !ok {
		order = routeOrders[entity.RouteSortLatest]
	}

	var routeModels []*model.RouteModel
	err := query.
		Order(order).
		Limit(clampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&routeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	return toRouteDomains(routeModels), nil
}

// Update saves every scalar column except the counters, which only IncrementCounter changes.
func (repo *routeRepository) Update(ctx context.Context, route *entity.Route, replacePoints bool) error {
	routeM := fromRouteDomain(route)
	routeM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.RouteModel{}).
			Where("id = ?", route.ID).
			Select(
				"title", "summary", "region1", "region2", "length_km", "duration_min",
				"stars_scenery", "stars_difficulty", "surface", "traffic",
				"speedbump", "enforcement", "signal", "tags_bitmask",
				"open_url", "nmap_url", "updated_at",
			).
			Updates(routeM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrRouteNotFound
		}

		if !replacePoints {
			return nil
		}
		if err := tx.Where("route_id = ?", route.ID).Delete(&model.RoutePointModel{}).Error; err != nil {
			return err
		}

		return insertPoints(tx, route.ID, route.Points)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update route")
	}
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// Delete removes the route with its points, likes, open events, photos, bookmarks and comments.
func (repo *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&model.CommentModel{}).Select("id").Where("route_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&model.CommentLikeModel{}).Error; err != nil {
			return err
		}

		for _, child := range []any{
			&model.CommentModel{},
			&model.RoutePointModel{},
			&model.RouteLikeModel{},
			&model.RouteOpenEventModel{},
			&model.RouteDailyOpensModel{},
			&model.RoutePhotoModel{},
			&model.BookmarkModel{},
		} {
			if err := tx.Where("route_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.RouteModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrRouteNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete route")
	}

	return nil
}

// IncrementCounter clamps at zero so a repeated unlike can never produce a negative count.
func (repo *routeRepository) IncrementCounter(ctx context.Context, id uuid.UUID, field entity.CounterField, delta int) (int, error) {
	if !counterColumns[field] {
		return 0, errors.Errorf("unknown route counter %q", field)
	}
	column := string(field)

	db := repo.db.WithContext(ctx)
	result := db.Model(&model.RouteModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update route counter")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrRouteNotFound
	}

	var value int
	if err := db.Model(&model.RouteModel{}).Where("id = ?", id).Select(column).Scan(&value).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read route counter")
	}

	return value, nil
}

func (repo *routeRepository) AddLike(ctx context.Context, routeID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.RouteLikeModel{RouteID: routeID, UserID: userID})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to like route")
	}

	return result.RowsAffected > 0, nil
}

func (repo *routeRepository) RemoveLike(ctx context.Context, routeID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("route_id = ? AND user_id = ?", routeID, userID).
		Delete(&model.RouteLikeModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to unlike route")
	}

	return result.RowsAffected > 0, nil
}

func (repo *routeRepository) HasLike(ctx context.Context, routeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.RouteLikeModel{}).
		Where("route_id = ? AND user_id = ?", routeID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check route like")
	}

	return count > 0, nil
}

func (repo *routeRepository) CreateOpenEvent(ctx context.Context, event *entity.RouteOpenEvent) error {
	eventM := &model.RouteOpenEventModel{
		ID:        event.ID,
		RouteID:   event.RouteID,
		UserID:    event.UserID,
		UserAgent: truncate(event.UserAgent, 300),
		Referrer:  truncate(event.Referrer, 300),
		Platform:  truncate(event.Platform, 50),
	}
	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record route open")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

func insertPoints(tx *gorm.DB, routeID uuid.UUID, points []entity.RoutePoint) error {
	if len(points) == 0 {
		return nil
	}

	pointModels := make([]model.RoutePointModel, 0, len(points))
	for i, p := range points {
		pointModels = append(pointModels, model.RoutePointModel{
			RouteID: routeID,
			Seq:     i,
			Lat:     p.Lat,
			Lng:     p.Lng,
			Name:    p.Name,
			Type:    string(p.Type),
		})
	}

	return tx.Create(&pointModels).Error
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}

// --- Mapper Functions ---

func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	points := make([]entity.RoutePoint, 0, len(data.Points))
	for _, p := range data.Points {
		points = append(points, entity.RoutePoint{
			Seq:  p.Seq,
			Lat:  p.Lat,
			Lng:  p.Lng,
			Name: p.Name,
			Type: entity.PointType(p.Type),
		})
	}

	return &entity.Route{
		ID:              data.ID,
		AuthorID:        data.AuthorID,
		Title:           data.Title,
		Summary:         data.Summary,
		Region1:         data.Region1,
		Region2:         data.Region2,
		LengthKm:        data.LengthKm,
		DurationMin:     data.DurationMin,
		StarsScenery:    data.StarsScenery,
		StarsDifficulty: data.StarsDifficulty,
		Surface:         entity.Surface(data.Surface),
		Traffic:         entity.Traffic(data.Traffic),
		Speedbump:       data.Speedbump,
		Enforcement:     data.Enforcement,
		Signal:          data.Signal,
		TagsBitmask:     data.TagsBitmask,
		OpenURL:         data.OpenURL,
		NmapURL:         data.NmapURL,
		LikeCount:       data.LikeCount,
		CommentCount:    data.CommentCount,
		OpenCount:       data.OpenCount,
		Points:          points,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toRouteDomains(data []*model.RouteModel) []*entity.Route {
	routes := make([]*entity.Route, 0, len(data))
	for _, routeM := range data {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes
}

// fromRouteDomain leaves Points empty; they are written by insertPoints.
func fromRouteDomain(data *entity.Route) *model.RouteModel {
	if data == nil {
		return nil
	}

	surface := data.Surface
	if surface == "" {
		surface = entity.SurfaceUnknown
	}
	traffic := data.Traffic
	if traffic == "" {
		traffic = entity.TrafficUnknown
	}

	return &model.RouteModel{
		ID:              data.ID,
		AuthorID:        data.AuthorID,
		Title:           data.Title,
		Summary:         data.Summary,
		Region1:         data.Region1,
		Region2:         data.Region2,
		LengthKm:        data.LengthKm,
		DurationMin:     data.DurationMin,
		StarsScenery:    data.StarsScenery,
		StarsDifficulty: data.StarsDifficulty,
		Surface:         string(surface),
		Traffic:         string(traffic),
		Speedbump:       data.Speedbump,
		Enforcement:     data.Enforcement,
		Signal:          data.Signal,
		TagsBitmask:     data.TagsBitmask,
		OpenURL:         data.OpenURL,
		NmapURL:         data.NmapURL,
		LikeCount:       data.LikeCount,
		CommentCount:    data.CommentCount,
		OpenCount:       data.OpenCount,
	}
}
