package reviews

import (
	"context"

	"gorm.io/gorm"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
)

// Repository encapsulates review persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review and returns the persisted model.
func (r *Repository) Create(ctx context.Context, userID, movieID int64, dto CreateReviewDTO) (*models.Review, error) {
	review := &models.Review{
		UserID:  userID,
		MovieID: movieID,
		Rating:  dto.Rating,
		Comment: dto.Comment,
	}
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListByMovie returns every review for the movie in storage order.
func (r *Repository) ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	var results []models.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
