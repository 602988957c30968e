package models

// All lists every entity in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Genre{},
		&Person{},
		&Movie{},
		&Tag{},
		&Review{},
		&WatchlistEntry{},
		&MovieGenre{},
		&MovieCast{},
		&UserFavoriteGenre{},
		&UserFavoritePerson{},
		&ReviewTag{},
		&PerformanceReview{},
	}
}
