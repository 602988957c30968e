package reviews

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cinebase/cinebase-backend/internal/movies"
	"github.com/cinebase/cinebase-backend/pkg/db/models"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:reviews_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Movie{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		for _, table := range []string{"reviews", "movies", "users"} {
			_ = gdb.Exec("DELETE FROM " + table).Error
		}
		sqlDB, _ := gdb.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})

	svc, err := NewService(ServiceParams{
		Repo:      NewRepository(gdb),
		MovieRepo: movies.NewRepository(gdb),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, gdb
}

func seedMovie(t *testing.T, gdb *gorm.DB, id int64, title string) {
	t.Helper()
	if err := gdb.Create(&models.Movie{ID: id, Title: title}).Error; err != nil {
		t.Fatalf("seed movie: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func TestCreateReviewForCatalogedMovie(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()
	seedMovie(t, gdb, 27205, "Inception")

	dto, err := svc.Create(ctx, 1, 27205, CreateReviewDTO{Rating: 9, Comment: strPtr("Excelente")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ID == 0 {
		t.Fatal("expected generated review id")
	}
	if dto.UserID != 1 || dto.MovieID != 27205 || dto.Rating != 9 {
		t.Fatalf("unexpected dto %+v", dto)
	}
	if dto.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestCreateReviewRequiresLocalMovie(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), 1, 99999, CreateReviewDTO{Rating: 5})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Filme com ID TMDB 99999 não encontrado" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, gdb := newTestService(t)
	seedMovie(t, gdb, 1, "Movie")

	for _, rating := range []int{-1, 11} {
		_, err := svc.Create(context.Background(), 1, 1, CreateReviewDTO{Rating: rating})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for rating %d, got %v", rating, err)
		}
	}
}

func TestListReviewsPreservesStorageOrder(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()
	seedMovie(t, gdb, 550, "Fight Club")

	for i, rating := range []int{8, 5, 10} {
		if _, err := svc.Create(ctx, int64(i+1), 550, CreateReviewDTO{Rating: rating}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	listed, err := svc.ListByMovie(ctx, 550)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(listed))
	}
	for i, want := range []int{8, 5, 10} {
		if listed[i].Rating != want {
			t.Fatalf("expected rating %d at position %d, got %d", want, i, listed[i].Rating)
		}
	}
}

func TestListReviewsRequiresLocalMovie(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListByMovie(context.Background(), 12345)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Filme com ID 12345 não encontrado" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestListReviewsEmptyForMovieWithoutReviews(t *testing.T) {
	svc, gdb := newTestService(t)
	seedMovie(t, gdb, 603, "The Matrix")

	listed, err := svc.ListByMovie(context.Background(), 603)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list, got %d", len(listed))
	}
}
