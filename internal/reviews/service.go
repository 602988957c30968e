package reviews

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
)

// Service exposes review creation and listing. Both operations require the
// movie to exist in the local catalog; there is no provider fallback here.
type Service interface {
	Create(ctx context.Context, userID, movieID int64, dto CreateReviewDTO) (*ReviewDTO, error)
	ListByMovie(ctx context.Context, movieID int64) ([]ReviewDTO, error)
}

type reviewRepository interface {
	Create(ctx context.Context, userID, movieID int64, dto CreateReviewDTO) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error)
}

type movieFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Movie, error)
}

const (
	movieMissingOnCreateFormat = "Filme com ID TMDB %d não encontrado"
	movieMissingOnListFormat   = "Filme com ID %d não encontrado"
)

type service struct {
	repo   reviewRepository
	movies movieFinder
}

// ServiceParams groups dependencies for the reviews service.
type ServiceParams struct {
	Repo      reviewRepository
	MovieRepo movieFinder
}

// NewService builds a reviews service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "review repository is required")
	}
	if params.MovieRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "movie repository is required")
	}
	return &service{repo: params.Repo, movies: params.MovieRepo}, nil
}

// Create stores the review after confirming the movie is cataloged locally.
func (s *service) Create(ctx context.Context, userID, movieID int64, dto CreateReviewDTO) (*ReviewDTO, error) {
	if dto.Rating < 0 || dto.Rating > 10 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 10")
	}
	if err := s.ensureMovie(ctx, movieID, movieMissingOnCreateFormat); err != nil {
		return nil, err
	}

	review, err := s.repo.Create(ctx, userID, movieID, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create review")
	}
	return FromModel(review), nil
}

// ListByMovie returns the movie's reviews in the order they were stored.
func (s *service) ListByMovie(ctx context.Context, movieID int64) ([]ReviewDTO, error) {
	if err := s.ensureMovie(ctx, movieID, movieMissingOnListFormat); err != nil {
		return nil, err
	}

	records, err := s.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}

	dtos := make([]ReviewDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos, nil
}

func (s *service) ensureMovie(ctx context.Context, movieID int64, missingFormat string) error {
	_, err := s.movies.FindByID(ctx, movieID)
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf(missingFormat, movieID))
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load movie")
}
