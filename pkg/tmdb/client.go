package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cinebase/cinebase-backend/pkg/config"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

const defaultTimeout = 10 * time.Second

var (
	errBaseURLRequired    = errors.New("tmdb base url is required")
	errCredentialRequired = errors.New("tmdb api key or bearer token is required")
	errLoggerRequired     = errors.New("tmdb logger is required")
)

// Client wraps the TMDB HTTP API with centralized auth, logging, and error
// mapping. A single client is shared by the catalog services.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	bearer     string
	useBearer  bool
	language   string
	logger     *logger.Logger
}

// NewClient validates the TMDB credentials and builds the wrapper.
func NewClient(cfg config.TMDBConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	bearer := strings.TrimSpace(cfg.BearerToken)
	if cfg.UseBearer && bearer == "" {
		return nil, errCredentialRequired
	}
	if !cfg.UseBearer && apiKey == "" {
		return nil, errCredentialRequired
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		bearer:     bearer,
		useBearer:  cfg.UseBearer,
		language:   cfg.Language,
		logger:     logg,
	}, nil
}

// MovieByID fetches one movie by its provider id. Any upstream failure is
// downgraded to a nil movie so callers treat it as "no data found".
func (c *Client) MovieByID(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	status, err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), url.Values{}, &movie)
	if err != nil {
		c.warn(ctx, "movie_by_id", id, err)
		return nil, nil
	}
	if status != http.StatusOK {
		c.warn(ctx, "movie_by_id", id, fmt.Errorf("unexpected status %d", status))
		return nil, nil
	}
	return &movie, nil
}

// SearchByTitle queries the provider's movie search. A non-200 answer is
// surfaced as an upstream error carrying the provider's status code.
func (c *Client) SearchByTitle(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")

	var payload searchResponse
	status, err := c.get(ctx, "/search/movie", params, &payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "Erro ao buscar dados no TMDB")
	}
	if status != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "Erro ao buscar dados no TMDB").WithStatus(status)
	}
	return payload.Results, nil
}

// NowPlaying fetches one page of the theatrical listing for a region. Upstream
// failures yield an empty page rather than an error.
func (c *Client) NowPlaying(ctx context.Context, region string, page int) (*NowPlayingPage, error) {
	params := url.Values{}
	params.Set("region", region)
	params.Set("page", strconv.Itoa(page))

	var payload NowPlayingPage
	status, err := c.get(ctx, "/movie/now_playing", params, &payload)
	if err != nil {
		c.warn(ctx, "now_playing", 0, err)
		return &NowPlayingPage{Page: page}, nil
	}
	if status != http.StatusOK {
		c.warn(ctx, "now_playing", 0, fmt.Errorf("unexpected status %d", status))
		return &NowPlayingPage{Page: page}, nil
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (int, error) {
	if c.language != "" {
		params.Set("language", c.language)
	}
	if !c.useBearer {
		params.Set("api_key", c.apiKey)
	}

	endpoint := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if c.useBearer {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func (c *Client) warn(ctx context.Context, op string, movieID int64, err error) {
	fields := map[string]any{"operation": op}
	if movieID != 0 {
		fields["movie_id"] = movieID
	}
	ctx = c.logger.WithFields(ctx, fields)
	c.logger.Warn(ctx, fmt.Sprintf("tmdb %s failed: %v", op, err))
}
