package models

import "time"

// Review is a user's rating of a movie.
type Review struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	MovieID   int64     `gorm:"column:movie_id;not null;index"`
	Rating    int       `gorm:"column:rating"`
	Comment   *string   `gorm:"column:comment;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Review) TableName() string { return "reviews" }
