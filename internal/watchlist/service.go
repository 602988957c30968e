package watchlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
)

const entryNotFoundMessage = "Filme não está na watchlist"

// Service exposes business rules for watchlist management.
type Service interface {
	Add(ctx context.Context, userID int64, req AddEntryRequest) (*EntryDTO, error)
	List(ctx context.Context, userID int64) ([]EntryDTO, error)
	MarkWatched(ctx context.Context, userID, movieID int64, watched bool) (*EntryDTO, error)
	Remove(ctx context.Context, userID, movieID int64) error
}

type watchlistRepository interface {
	AddEntry(ctx context.Context, userID, movieID int64, watched bool) error
	FindEntry(ctx context.Context, userID, movieID int64) (*models.WatchlistEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]models.WatchlistEntry, error)
	SetWatched(ctx context.Context, userID, movieID int64, watched bool, at time.Time) error
	RemoveEntry(ctx context.Context, userID, movieID int64) error
}

type movieFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Movie, error)
}

type service struct {
	repo   watchlistRepository
	movies movieFinder
	now    func() time.Time
}

// ServiceParams groups dependencies for the watchlist service.
type ServiceParams struct {
	Repo      watchlistRepository
	MovieRepo movieFinder
	Now       func() time.Time
}

// NewService builds a watchlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "watchlist repository is required")
	}
	if params.MovieRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "movie repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, movies: params.MovieRepo, now: now}, nil
}

// Add puts a cataloged movie on the user's watchlist. Re-adding an existing
// entry leaves the stored row untouched.
func (s *service) Add(ctx context.Context, userID int64, req AddEntryRequest) (*EntryDTO, error) {
	if req.MovieID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "movie_id must be positive")
	}
	if err := s.ensureMovie(ctx, req.MovieID); err != nil {
		return nil, err
	}

	if err := s.repo.AddEntry(ctx, userID, req.MovieID, req.Watched); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add watchlist entry")
	}

	entry, err := s.repo.FindEntry(ctx, userID, req.MovieID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load watchlist entry")
	}
	return FromModel(entry), nil
}

// List returns the user's watchlist in insertion order.
func (s *service) List(ctx context.Context, userID int64) ([]EntryDTO, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list watchlist")
	}
	dtos := make([]EntryDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, *FromModel(&entries[i]))
	}
	return dtos, nil
}

// MarkWatched flips the watched flag and maintains the watched_at stamp.
func (s *service) MarkWatched(ctx context.Context, userID, movieID int64, watched bool) (*EntryDTO, error) {
	err := s.repo.SetWatched(ctx, userID, movieID, watched, s.now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, entryNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update watchlist entry")
	}

	entry, err := s.repo.FindEntry(ctx, userID, movieID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load watchlist entry")
	}
	return FromModel(entry), nil
}

// Remove drops the watchlist entry regardless of prior state.
func (s *service) Remove(ctx context.Context, userID, movieID int64) error {
	if err := s.repo.RemoveEntry(ctx, userID, movieID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove watchlist entry")
	}
	return nil
}

func (s *service) ensureMovie(ctx context.Context, movieID int64) error {
	_, err := s.movies.FindByID(ctx, movieID)
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("Filme com ID TMDB %d não encontrado", movieID))
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load movie")
}
