package movies

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
	"github.com/cinebase/cinebase-backend/pkg/tmdb"
)

const releaseDateLayout = "2006-01-02"

// MovieDTO is the catalog transport shape. IDs are the metadata provider's ids.
type MovieDTO struct {
	ID          int64    `json:"id"`
	Title       *string  `json:"title"`
	Overview    *string  `json:"overview"`
	PosterURL   *string  `json:"poster_url"`
	ReleaseDate *string  `json:"release_date"`
	Budget      *float64 `json:"budget"`
}

// CreateMovieDTO holds the data persisted for a catalog entry.
type CreateMovieDTO struct {
	ID          int64
	Title       string
	Overview    *string
	PosterURL   *string
	ReleaseDate *time.Time
	Budget      *decimal.Decimal
	Revenue     *decimal.Decimal
}

// NowPlayingItemDTO is the flattened theatrical listing row.
type NowPlayingItemDTO struct {
	ID       int64    `json:"id"`
	Titulo   string   `json:"titulo"`
	Data     string   `json:"data"`
	Nota     float64  `json:"nota"`
	Poster   *string  `json:"poster"`
	Overview *string  `json:"overview"`
}

// NowPlayingDTO wraps the listing under the response key the clients expect.
type NowPlayingDTO struct {
	Filmes []NowPlayingItemDTO `json:"filmes"`
}

func FromModel(m *models.Movie) *MovieDTO {
	if m == nil {
		return nil
	}
	dto := &MovieDTO{
		ID:        m.ID,
		Overview:  m.Overview,
		PosterURL: m.PosterURL,
	}
	if m.Title != "" {
		title := m.Title
		dto.Title = &title
	}
	if m.ReleaseDate != nil {
		formatted := m.ReleaseDate.Format(releaseDateLayout)
		dto.ReleaseDate = &formatted
	}
	if m.Budget != nil {
		budget := m.Budget.InexactFloat64()
		dto.Budget = &budget
	}
	return dto
}

func (c CreateMovieDTO) ToModel() *models.Movie {
	return &models.Movie{
		ID:          c.ID,
		Title:       c.Title,
		Overview:    c.Overview,
		PosterURL:   c.PosterURL,
		ReleaseDate: c.ReleaseDate,
		Budget:      c.Budget,
		Revenue:     c.Revenue,
	}
}

// FromProvider translates the provider payload into the persistence shape.
// Unparsable release dates are stored as null rather than failing the row.
func FromProvider(m tmdb.Movie) CreateMovieDTO {
	dto := CreateMovieDTO{
		ID:        m.ID,
		Overview:  m.Overview,
		PosterURL: m.PosterPath,
	}
	if m.Title != nil {
		dto.Title = *m.Title
	}
	if m.ReleaseDate != nil && *m.ReleaseDate != "" {
		if parsed, err := time.Parse(releaseDateLayout, *m.ReleaseDate); err == nil {
			dto.ReleaseDate = &parsed
		}
	}
	if m.Budget != nil {
		budget := decimal.NewFromInt(*m.Budget)
		dto.Budget = &budget
	}
	if m.Revenue != nil {
		revenue := decimal.NewFromInt(*m.Revenue)
		dto.Revenue = &revenue
	}
	return dto
}
