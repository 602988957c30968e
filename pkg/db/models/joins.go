package models

// Join entities with composite keys. Relationships are navigated through
// explicit queries rather than preloaded object graphs.

type MovieGenre struct {
	MovieID int64 `gorm:"column:movie_id;primaryKey;autoIncrement:false"`
	GenreID int64 `gorm:"column:genre_id;primaryKey;autoIncrement:false"`
}

func (MovieGenre) TableName() string { return "movie_genres" }

// MovieCast carries the character played in addition to the pairing.
type MovieCast struct {
	MovieID       int64   `gorm:"column:movie_id;primaryKey;autoIncrement:false"`
	PersonID      int64   `gorm:"column:person_id;primaryKey;autoIncrement:false"`
	CharacterName *string `gorm:"column:character_name;type:varchar(100)"`
}

func (MovieCast) TableName() string { return "movie_cast" }

type UserFavoriteGenre struct {
	UserID  int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	GenreID int64 `gorm:"column:genre_id;primaryKey;autoIncrement:false"`
}

func (UserFavoriteGenre) TableName() string { return "user_favorite_genres" }

type UserFavoritePerson struct {
	UserID   int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	PersonID int64 `gorm:"column:person_id;primaryKey;autoIncrement:false"`
}

func (UserFavoritePerson) TableName() string { return "user_favorite_people" }

type ReviewTag struct {
	ReviewID int64 `gorm:"column:review_id;primaryKey;autoIncrement:false"`
	TagID    int64 `gorm:"column:tag_id;primaryKey;autoIncrement:false"`
}

func (ReviewTag) TableName() string { return "review_tags" }

// PerformanceReview rates a single cast member within a review.
type PerformanceReview struct {
	ReviewID          int64 `gorm:"column:review_id;primaryKey;autoIncrement:false"`
	PersonID          int64 `gorm:"column:person_id;primaryKey;autoIncrement:false"`
	PerformanceRating int   `gorm:"column:performance_rating"`
}

func (PerformanceReview) TableName() string { return "performance_reviews" }
