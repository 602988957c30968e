package movies

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cinebase/cinebase-backend/pkg/db"
	"github.com/cinebase/cinebase-backend/pkg/db/models"
)

// Repository encapsulates catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a movies repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a catalog entry by its provider id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByTitleLike returns every movie whose title contains the query,
// case-insensitively.
func (r *Repository) FindByTitleLike(ctx context.Context, query string) ([]models.Movie, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var results []models.Movie
	err := r.db.WithContext(ctx).
		Where("lower(title) LIKE ?", pattern).
		Order("id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CreateIfAbsent persists the entry unless one with the same id already
// exists, in which case the stored row wins and is returned unchanged. A
// concurrent insert losing the primary-key race resolves the same way.
func (r *Repository) CreateIfAbsent(ctx context.Context, dto CreateMovieDTO) (*models.Movie, error) {
	existing, err := r.FindByID(ctx, dto.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	movie := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		if db.IsUniqueViolation(err, "movies_pkey") {
			return r.FindByID(ctx, dto.ID)
		}
		return nil, err
	}
	return movie, nil
}
