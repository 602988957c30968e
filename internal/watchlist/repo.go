package watchlist

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
)

// Repository encapsulates watchlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a watchlist repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddEntry inserts a watchlist row and ignores duplicates, keeping the add
// operation idempotent per user/movie pair.
func (r *Repository) AddEntry(ctx context.Context, userID, movieID int64, watched bool) error {
	entry := &models.WatchlistEntry{
		UserID:  userID,
		MovieID: movieID,
		Watched: watched,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry).Error
}

// FindEntry loads one user/movie watchlist row.
func (r *Repository) FindEntry(ctx context.Context, userID, movieID int64) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser returns the user's watchlist in insertion order.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Order("movie_id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SetWatched updates the watched flag and stamps watched_at accordingly.
// Returns gorm.ErrRecordNotFound when the entry does not exist.
func (r *Repository) SetWatched(ctx context.Context, userID, movieID int64, watched bool, at time.Time) error {
	updates := map[string]any{"watched": watched}
	if watched {
		updates["watched_at"] = at
	} else {
		updates["watched_at"] = nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveEntry deletes the user/movie row if it exists.
func (r *Repository) RemoveEntry(ctx context.Context, userID, movieID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.WatchlistEntry{}).Error
}
