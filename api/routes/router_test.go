package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cinebase/cinebase-backend/internal/auth"
	"github.com/cinebase/cinebase-backend/internal/movies"
	"github.com/cinebase/cinebase-backend/internal/reviews"
	"github.com/cinebase/cinebase-backend/internal/users"
	"github.com/cinebase/cinebase-backend/internal/watchlist"
	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/cinebase/cinebase-backend/pkg/db"
	"github.com/cinebase/cinebase-backend/pkg/db/models"
	"github.com/cinebase/cinebase-backend/pkg/logger"
	"github.com/cinebase/cinebase-backend/pkg/tmdb"
)

type stubGateway struct {
	movie      *tmdb.Movie
	movieErr   error
	search     []tmdb.Movie
	searchErr  error
	nowPlaying *tmdb.NowPlayingPage
	calls      int
}

func (s *stubGateway) MovieByID(ctx context.Context, id int64) (*tmdb.Movie, error) {
	s.calls++
	return s.movie, s.movieErr
}

func (s *stubGateway) SearchByTitle(ctx context.Context, query string) ([]tmdb.Movie, error) {
	s.calls++
	return s.search, s.searchErr
}

func (s *stubGateway) NowPlaying(ctx context.Context, region string, page int) (*tmdb.NowPlayingPage, error) {
	s.calls++
	if s.nowPlaying != nil {
		return s.nowPlaying, nil
	}
	return &tmdb.NowPlayingPage{Page: page}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		},
	}
}

func newTestRouter(t *testing.T, gateway *stubGateway) (http.Handler, *db.Client) {
	t.Helper()

	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "routes-test", Output: io.Discard})

	client, err := db.New(context.Background(), config.DBConfig{
		DSN:    "file:routes_test?mode=memory&cache=shared",
		Driver: "sqlite",
	}, config.FeatureFlagsConfig{}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := client.DB().AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		for _, table := range []string{"reviews", "watchlist", "movies", "users"} {
			_ = client.DB().Exec("DELETE FROM " + table).Error
		}
		_ = client.Close()
	})

	userRepo := users.NewRepository(client.DB())
	movieRepo := movies.NewRepository(client.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{DB: client})
	if err != nil {
		t.Fatalf("register service: %v", err)
	}
	movieService, err := movies.NewService(movies.ServiceParams{
		Repo:    movieRepo,
		Gateway: gateway,
		Logger:  logg,
	})
	if err != nil {
		t.Fatalf("movie service: %v", err)
	}
	reviewService, err := reviews.NewService(reviews.ServiceParams{
		Repo:      reviews.NewRepository(client.DB()),
		MovieRepo: movieRepo,
	})
	if err != nil {
		t.Fatalf("review service: %v", err)
	}
	watchlistService, err := watchlist.NewService(watchlist.ServiceParams{
		Repo:      watchlist.NewRepository(client.DB()),
		MovieRepo: movieRepo,
	})
	if err != nil {
		t.Fatalf("watchlist service: %v", err)
	}

	router := NewRouter(RouterParams{
		Config:           cfg,
		Logger:           logg,
		DBPinger:         client,
		UserRepo:         userRepo,
		AuthService:      authService,
		RegisterService:  registerService,
		MovieService:     movieService,
		ReviewService:    reviewService,
		WatchlistService: watchlistService,
	})
	return router, client
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func registerAndLogin(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/usuarios/", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "s3cret-pw",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/login/", "", map[string]any{
		"email":    email,
		"password": "s3cret-pw",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var token auth.TokenDTO
	decodeBody(t, rec, &token)
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", token)
	}
	return token.AccessToken
}

func TestRootBanner(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["mensagem"] != "CineBase API está online!" || body["status"] != "OK" {
		t.Fatalf("unexpected banner: %v", body)
	}
}

func TestHealthLive(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodGet, "/health/live", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRegisterLoginAndMe(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})
	token := registerAndLogin(t, router, "ana@example.com")

	rec := doJSON(t, router, http.MethodGet, "/usuarios/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", rec.Code, rec.Body.String())
	}
	var me users.UserDTO
	decodeBody(t, rec, &me)
	if me.Email != "ana@example.com" || me.Name != "Test User" {
		t.Fatalf("unexpected profile: %+v", me)
	}
}

func TestRegisterAcceptsShortPassword(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodPost, "/usuarios/", "", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "pw123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/login/", "", map[string]any{
		"email":    "alice@example.com",
		"password": "pw123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})
	registerAndLogin(t, router, "dup@example.com")

	rec := doJSON(t, router, http.MethodPost, "/usuarios/", "", map[string]any{
		"name":     "Someone Else",
		"email":    "dup@example.com",
		"password": "another-pw",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Email já registrado") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})
	registerAndLogin(t, router, "carla@example.com")

	rec := doJSON(t, router, http.MethodPost, "/login/", "", map[string]any{
		"email":    "carla@example.com",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Credenciais inválidas") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/usuarios/me"},
		{http.MethodGet, "/usuarios/me/watchlist/"},
		{http.MethodPost, "/filmes/27205/avaliacoes"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s status = %d", tc.method, tc.path, rec.Code)
		}
		if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Fatalf("%s %s challenge = %q", tc.method, tc.path, got)
		}
	}
}

func TestMovieByIDServedLocallyWithoutProviderCall(t *testing.T) {
	gateway := &stubGateway{}
	router, client := newTestRouter(t, gateway)

	seed := models.Movie{ID: 27205, Title: "Inception"}
	if err := client.DB().Create(&seed).Error; err != nil {
		t.Fatalf("seed movie: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/filmes/27205", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var movie movies.MovieDTO
	decodeBody(t, rec, &movie)
	if movie.ID != 27205 || movie.Title == nil || *movie.Title != "Inception" {
		t.Fatalf("unexpected movie: %+v", movie)
	}
	if gateway.calls != 0 {
		t.Fatalf("provider calls = %d, want 0", gateway.calls)
	}
}

func TestMovieByIDUnknownEverywhere(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodGet, "/filmes/999999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Filme não encontrado") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodGet, "/filmes/search", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestSearchPersistsProviderResults(t *testing.T) {
	title := "Inception"
	overview := "A thief who steals corporate secrets."
	gateway := &stubGateway{
		search: []tmdb.Movie{{ID: 27205, Title: &title, Overview: &overview}},
	}
	router, client := newTestRouter(t, gateway)

	rec := doJSON(t, router, http.MethodGet, "/filmes/search?query=inception", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var results []movies.MovieDTO
	decodeBody(t, rec, &results)
	if len(results) != 1 || results[0].ID != 27205 {
		t.Fatalf("unexpected results: %+v", results)
	}

	var count int64
	if err := client.DB().Model(&models.Movie{}).Where("id = ?", 27205).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("persisted rows = %d, want 1", count)
	}
}

func TestNowPlayingEmptyIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodGet, "/em_cartaz?regiao=BR", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Nada em cartaz") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestReviewLifecycle(t *testing.T) {
	router, client := newTestRouter(t, &stubGateway{})
	token := registerAndLogin(t, router, "rev@example.com")

	if err := client.DB().Create(&models.Movie{ID: 550, Title: "Fight Club"}).Error; err != nil {
		t.Fatalf("seed movie: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/filmes/550/avaliacoes", token, map[string]any{
		"rating":  9,
		"comment": "Excelente.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/filmes/550/avaliacoes", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", rec.Code, rec.Body.String())
	}
	var listed []reviews.ReviewDTO
	decodeBody(t, rec, &listed)
	if len(listed) != 1 || listed[0].Rating != 9 || listed[0].MovieID != 550 {
		t.Fatalf("unexpected reviews: %+v", listed)
	}
}

func TestReviewOnUncatalogedMovie(t *testing.T) {
	router, _ := newTestRouter(t, &stubGateway{})
	token := registerAndLogin(t, router, "rev404@example.com")

	rec := doJSON(t, router, http.MethodPost, "/filmes/424242/avaliacoes", token, map[string]any{
		"rating":  7,
		"comment": "?",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), fmt.Sprintf("Filme com ID TMDB %d não encontrado", 424242)) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/filmes/424242/avaliacoes", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("list status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Filme com ID 424242 não encontrado") {
		t.Fatalf("unexpected list body: %s", rec.Body.String())
	}
}

func TestWatchlistLifecycle(t *testing.T) {
	router, client := newTestRouter(t, &stubGateway{})
	token := registerAndLogin(t, router, "wl@example.com")

	if err := client.DB().Create(&models.Movie{ID: 603, Title: "The Matrix"}).Error; err != nil {
		t.Fatalf("seed movie: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/usuarios/me/watchlist/", token, map[string]any{
		"movie_id": 603,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/usuarios/me/watchlist/", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", rec.Code, rec.Body.String())
	}
	var entries []watchlist.EntryDTO
	decodeBody(t, rec, &entries)
	if len(entries) != 1 || entries[0].MovieID != 603 || entries[0].Watched {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	rec = doJSON(t, router, http.MethodPatch, "/usuarios/me/watchlist/603", token, map[string]any{
		"watched": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body.String())
	}
	var updated watchlist.EntryDTO
	decodeBody(t, rec, &updated)
	if !updated.Watched || updated.WatchedAt == nil {
		t.Fatalf("unexpected entry after patch: %+v", updated)
	}

	rec = doJSON(t, router, http.MethodDelete, "/usuarios/me/watchlist/603", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/usuarios/me/watchlist/", token, nil)
	entries = nil
	decodeBody(t, rec, &entries)
	if len(entries) != 0 {
		t.Fatalf("entries after delete = %+v", entries)
	}
}
