package movies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/cinebase/cinebase-backend/pkg/db/models"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
	"github.com/cinebase/cinebase-backend/pkg/tmdb"
)

const (
	movieNotFoundMessage     = "Filme não encontrado"
	noSearchResultsMessage   = "Nenhum filme encontrado no TMDB."
	nothingInTheatersMessage = "Nada em cartaz"
)

// Service resolves catalog entries locally first and falls back to the
// metadata provider, persisting whatever the fallback returns.
type Service interface {
	GetByID(ctx context.Context, id int64) (*MovieDTO, error)
	SearchByTitle(ctx context.Context, query string) ([]MovieDTO, error)
	NowPlaying(ctx context.Context, region string) (*NowPlayingDTO, error)
}

type metadataGateway interface {
	MovieByID(ctx context.Context, id int64) (*tmdb.Movie, error)
	SearchByTitle(ctx context.Context, query string) ([]tmdb.Movie, error)
	NowPlaying(ctx context.Context, region string, page int) (*tmdb.NowPlayingPage, error)
}

type movieRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Movie, error)
	FindByTitleLike(ctx context.Context, query string) ([]models.Movie, error)
	CreateIfAbsent(ctx context.Context, dto CreateMovieDTO) (*models.Movie, error)
}

type service struct {
	repo          movieRepository
	gateway       metadataGateway
	defaultRegion string
	logger        *logger.Logger
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo          movieRepository
	Gateway       metadataGateway
	DefaultRegion string
	Logger        *logger.Logger
}

// NewService builds the catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "movie repository is required")
	}
	if params.Gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "metadata gateway is required")
	}
	region := strings.TrimSpace(params.DefaultRegion)
	if region == "" {
		region = "BR"
	}
	return &service{
		repo:          params.Repo,
		gateway:       params.Gateway,
		defaultRegion: region,
		logger:        params.Logger,
	}, nil
}

// GetByID answers from the local catalog when possible. Misses go to the
// provider; whatever it returns is persisted before answering so the next
// lookup is local.
func (s *service) GetByID(ctx context.Context, id int64) (*MovieDTO, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "movie id must be positive")
	}

	local, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return FromModel(local), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load movie")
	}

	remote, err := s.gateway.MovieByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "consult metadata provider")
	}
	if remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, movieNotFoundMessage)
	}

	saved, err := s.repo.CreateIfAbsent(ctx, FromProvider(*remote))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist movie")
	}
	return FromModel(saved), nil
}

// SearchByTitle returns local substring matches when any exist; the provider
// is only consulted on a complete local miss. Fallback hits are persisted
// row by row, skipping entries that fail to save.
func (s *service) SearchByTitle(ctx context.Context, query string) ([]MovieDTO, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query is required")
	}

	local, err := s.repo.FindByTitleLike(ctx, trimmed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search local catalog")
	}
	if len(local) > 0 {
		dtos := make([]MovieDTO, 0, len(local))
		for i := range local {
			dtos = append(dtos, *FromModel(&local[i]))
		}
		return dtos, nil
	}

	remote, err := s.gateway.SearchByTitle(ctx, trimmed)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeUpstream {
			wrapped := pkgerrors.New(pkgerrors.CodeUpstream,
				fmt.Sprintf("Erro ao buscar filme no TMDB: %s", typed.Message()))
			return nil, wrapped.WithStatus(typed.HTTPStatus())
		}
		return nil, err
	}
	if len(remote) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, noSearchResultsMessage)
	}

	dtos := make([]MovieDTO, 0, len(remote))
	for _, candidate := range remote {
		saved, err := s.repo.CreateIfAbsent(ctx, FromProvider(candidate))
		if err != nil {
			if s.logger != nil {
				lctx := s.logger.WithMovieID(ctx, candidate.ID)
				s.logger.Warn(lctx, fmt.Sprintf("skipping search result: %v", err))
			}
			continue
		}
		dtos = append(dtos, *FromModel(saved))
	}
	return dtos, nil
}

// NowPlaying lists the provider's theatrical page for the region. Nothing is
// persisted here.
func (s *service) NowPlaying(ctx context.Context, region string) (*NowPlayingDTO, error) {
	resolved := strings.TrimSpace(region)
	if resolved == "" {
		resolved = s.defaultRegion
	}

	page, err := s.gateway.NowPlaying(ctx, resolved, 1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "consult metadata provider")
	}
	if page == nil || len(page.Results) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, nothingInTheatersMessage)
	}

	items := make([]NowPlayingItemDTO, 0, len(page.Results))
	for _, movie := range page.Results {
		item := NowPlayingItemDTO{
			ID:       movie.ID,
			Poster:   movie.PosterPath,
			Overview: movie.Overview,
		}
		if movie.Title != nil {
			item.Titulo = *movie.Title
		}
		if movie.ReleaseDate != nil {
			item.Data = *movie.ReleaseDate
		}
		if movie.VoteAverage != nil {
			item.Nota = *movie.VoteAverage
		}
		items = append(items, item)
	}
	return &NowPlayingDTO{Filmes: items}, nil
}
