package reviews

import (
	"time"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
)

// ReviewDTO is the transport shape for one review.
type ReviewDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReviewDTO carries the payload submitted by a reviewer.
type CreateReviewDTO struct {
	Rating  int     `json:"rating" validate:"min=0,max=10"`
	Comment *string `json:"comment"`
}

func FromModel(r *models.Review) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:        r.ID,
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
