package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movie is the locally cached catalog record. The primary key is the
// external provider's id, assigned by the caller and never autogenerated,
// so local and remote records can never collide.
type Movie struct {
	ID          int64            `gorm:"column:id;primaryKey;autoIncrement:false"`
	Title       string           `gorm:"column:title;type:varchar(200);not null"`
	Overview    *string          `gorm:"column:overview;type:text"`
	ReleaseDate *time.Time       `gorm:"column:release_date;type:date"`
	Budget      *decimal.Decimal `gorm:"column:budget;type:numeric(12,2)"`
	Revenue     *decimal.Decimal `gorm:"column:revenue;type:numeric(12,2)"`
	PosterURL   *string          `gorm:"column:poster_url;type:varchar(255)"`
}

func (Movie) TableName() string { return "movies" }
