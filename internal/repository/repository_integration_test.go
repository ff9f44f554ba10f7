package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vershina/sportclub/internal/database"
	"github.com/vershina/sportclub/internal/models"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("TEST_DATABASE_URL")
		if dbURL == "" {
			testDBErr = fmt.Errorf("TEST_DATABASE_URL is not set")
			return
		}

		if testDBErr = database.MigrateUp(dbURL); testDBErr != nil {
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			testDBErr = err
			return
		}

		testDBPool, testDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if testDBErr != nil {
			return
		}
		testDBErr = testDBPool.Ping(context.Background())
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestCoachRepositoryListsCreatedCoachOnceInItsSection(t *testing.T) {
	ctx := context.Background()
	repo := NewCoachRepository(integrationTestPool(t))

	name := uniqueName("Coach")
	experience := "10 лет"
	created, err := repo.Create(ctx, CoachInput{
		Name:       name,
		Experience: &experience,
		Section:    models.SectionSki,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, created.ID) })

	ski, err := repo.ListBySection(ctx, models.SectionSki)
	require.NoError(t, err)

	matches := 0
	for _, coach := range ski {
		if coach.ID == created.ID {
			matches++
			assert.Equal(t, name, coach.Name)
			assert.Equal(t, experience, *coach.Experience)
		}
	}
	assert.Equal(t, 1, matches)

	gym, err := repo.ListBySection(ctx, models.SectionGym)
	require.NoError(t, err)
	for _, coach := range gym {
		assert.NotEqual(t, created.ID, coach.ID)
	}
}

func TestCoachRepositoryUpdateKeepsPhotoWhenNoneGiven(t *testing.T) {
	ctx := context.Background()
	repo := NewCoachRepository(integrationTestPool(t))

	photo := "https://res.cloudinary.com/demo/image/upload/coach.png"
	handle := "sportclub/coaches/coach"
	created, err := repo.Create(ctx, CoachInput{
		Name:        uniqueName("Coach"),
		Section:     models.SectionGym,
		PhotoURL:    &photo,
		PhotoHandle: &handle,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, created.ID) })

	updated, err := repo.Update(ctx, created.ID, CoachInput{
		Name:    "Renamed",
		Section: models.SectionSki,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, models.SectionSki, updated.Section)
	require.NotNil(t, updated.PhotoURL)
	assert.Equal(t, photo, *updated.PhotoURL)
	require.NotNil(t, updated.PhotoHandle)
	assert.Equal(t, handle, *updated.PhotoHandle)

	localPhoto := "images/coaches/new.png"
	replaced, err := repo.Update(ctx, created.ID, CoachInput{
		Name:     "Renamed",
		Section:  models.SectionSki,
		PhotoURL: &localPhoto,
	})
	require.NoError(t, err)
	assert.Equal(t, localPhoto, *replaced.PhotoURL)
	assert.Nil(t, replaced.PhotoHandle)
}

func TestServiceRepositoryRejectsNegativePriceAtSchemaLevel(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository(integrationTestPool(t))

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	_, err = repo.Create(ctx, ServiceInput{Name: uniqueName("Service"), Price: -1, Section: models.SectionGym})
	require.Error(t, err)

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestServiceRepositoryRoundTripsPrice(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository(integrationTestPool(t))

	created, err := repo.Create(ctx, ServiceInput{Name: uniqueName("Service"), Price: 1500.5, Section: models.SectionSki})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, created.ID) })

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1500.5, fetched.Price, 0.001)
}

func TestNewsRepositoryDefaultsPubDateAndOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewNewsRepository(integrationTestPool(t))

	first, err := repo.Create(ctx, NewsInput{Title: uniqueName("First"), Content: "a"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, first.ID) })
	second, err := repo.Create(ctx, NewsInput{Title: uniqueName("Second"), Content: "b"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, second.ID) })

	assert.WithinDuration(t, time.Now(), first.PubDate, time.Minute)

	latest, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, second.ID, latest[0].ID)
	assert.Equal(t, first.ID, latest[1].ID)
}

func TestCourseRepositoryStoresEmptyDescriptionAsNull(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository(integrationTestPool(t))

	created, err := repo.Create(ctx, CourseInput{Title: "Intro Ski", YoutubeID: "abc123"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, created.ID) })

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro Ski", fetched.Title)
	assert.Equal(t, "abc123", fetched.YoutubeID)
	assert.Nil(t, fetched.Description)
}

func TestDeleteMissingRowReturnsErrNoRows(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository(integrationTestPool(t))

	err := repo.Delete(ctx, -1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = repo.GetByID(ctx, -1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
