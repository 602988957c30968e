package tmdb

// Movie is the provider's movie payload, shared by the detail, search, and
// now-playing endpoints. Pointer fields distinguish absent values so the
// translation layer can map them to nulls.
type Movie struct {
	ID          int64    `json:"id"`
	Title       *string  `json:"title"`
	Overview    *string  `json:"overview"`
	PosterPath  *string  `json:"poster_path"`
	ReleaseDate *string  `json:"release_date"`
	Budget      *int64   `json:"budget"`
	Revenue     *int64   `json:"revenue"`
	VoteAverage *float64 `json:"vote_average"`
}

type searchResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}

// NowPlayingPage is one page of the provider's now-playing listing.
type NowPlayingPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
