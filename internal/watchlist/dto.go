package watchlist

import (
	"time"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
)

// EntryDTO is the transport shape for one watchlist row.
type EntryDTO struct {
	UserID    int64      `json:"user_id"`
	MovieID   int64      `json:"movie_id"`
	Watched   bool       `json:"watched"`
	AddedAt   time.Time  `json:"added_at"`
	WatchedAt *time.Time `json:"watched_at"`
}

// AddEntryRequest is the payload for putting a movie on the watchlist.
type AddEntryRequest struct {
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
	Watched bool  `json:"watched"`
}

// MarkWatchedRequest toggles the watched flag on an entry.
type MarkWatchedRequest struct {
	Watched bool `json:"watched"`
}

func FromModel(e *models.WatchlistEntry) *EntryDTO {
	if e == nil {
		return nil
	}
	return &EntryDTO{
		UserID:    e.UserID,
		MovieID:   e.MovieID,
		Watched:   e.Watched,
		AddedAt:   e.AddedAt,
		WatchedAt: e.WatchedAt,
	}
}
