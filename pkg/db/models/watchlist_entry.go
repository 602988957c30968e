package models

import "time"

// WatchlistEntry links a user to a movie they intend to watch.
// Composite key keeps the pair unique.
type WatchlistEntry struct {
	UserID    int64      `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	MovieID   int64      `gorm:"column:movie_id;primaryKey;autoIncrement:false"`
	Watched   bool       `gorm:"column:watched;not null;default:false"`
	AddedAt   time.Time  `gorm:"column:added_at;autoCreateTime"`
	WatchedAt *time.Time `gorm:"column:watched_at"`
}

func (WatchlistEntry) TableName() string { return "watchlist" }
