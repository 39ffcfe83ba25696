package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

var (
	testCreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	adventureCols = []string{"id", "user_id", "title", "description", "estimated_duration", "estimated_cost", "steps", "created_at", "scheduled_for", "is_completed", "is_favorite"}
	reviewCols    = []string{"id", "user_id", "community_adventure_id", "rating", "text", "created_at"}
	albumCols     = []string{"id", "user_id", "title", "description", "cover_image", "adventure_ids", "created_at"}
	profileCols   = []string{"id", "subscription_tier", "subscription_status", "is_pro", "updated_at"}
)

// =============================================================================
// ADVENTURES
// =============================================================================

func TestAdventureRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM adventures WHERE id = \$1`).
		WithArgs("adv-1").
		WillReturnRows(sqlmock.NewRows(adventureCols).AddRow(
			"adv-1", "u1", "Harbor walk", "", nil, "$$$",
			[]byte(`[{"title":"Ferry"}]`), testCreatedAt, nil, nil, true,
		))

	adv, err := repo.GetByID(context.Background(), "adv-1")
	require.NoError(t, err)
	require.NotNil(t, adv)
	assert.Equal(t, "Harbor walk", adv.Title)
	assert.Nil(t, adv.EstimatedDuration)
	assert.Equal(t, "$$$", *adv.EstimatedCost)
	require.Len(t, adv.Steps, 1)
	assert.Equal(t, "Ferry", adv.Steps[0].Title)
	assert.True(t, *adv.IsFavorite)
	assert.Nil(t, adv.IsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdventureRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM adventures WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(adventureCols))

	adv, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, adv)
}

func TestAdventureRepository_GetByID_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM adventures`).WillReturnError(errors.New("conn reset"))

	_, err := repo.GetByID(context.Background(), "a")
	assert.True(t, errors.Is(err, database.ErrQuery))
}

func TestAdventureRepository_ListByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM adventures\s+WHERE user_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs("u1", 50).
		WillReturnRows(sqlmock.NewRows(adventureCols).
			AddRow("a2", "u1", "B", "", nil, nil, []byte(`[]`), testCreatedAt, nil, nil, nil).
			AddRow("a1", "u1", "A", "", nil, nil, []byte(`[]`), testCreatedAt.Add(-time.Hour), nil, nil, nil))

	list, err := repo.ListByUser(context.Background(), "u1", 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdventureRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	no := false
	adv := &model.Adventure{
		ID:          "a1",
		UserID:      "u1",
		Title:       "Picnic",
		Steps:       model.AdventureSteps{},
		CreatedAt:   testCreatedAt,
		IsCompleted: &no,
		IsFavorite:  &no,
	}

	mock.ExpectExec(`INSERT INTO adventures`).
		WithArgs("a1", "u1", "Picnic", "", nil, nil, []byte(`[]`), testCreatedAt, nil, false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), adv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdventureRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectQuery(`UPDATE adventures SET`).
		WithArgs("a1", true, nil, nil).
		WillReturnRows(sqlmock.NewRows(adventureCols).
			AddRow("a1", "u1", "A", "", nil, nil, []byte(`[]`), testCreatedAt, nil, nil, true))

	fav := true
	adv, err := repo.Update(context.Background(), "a1", &model.AdventurePatch{IsFavorite: &fav})
	require.NoError(t, err)
	require.NotNil(t, adv)
	assert.True(t, *adv.IsFavorite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdventureRepository_Update_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectQuery(`UPDATE adventures SET`).WillReturnRows(sqlmock.NewRows(adventureCols))

	fav := true
	adv, err := repo.Update(context.Background(), "a1", &model.AdventurePatch{IsFavorite: &fav})
	require.NoError(t, err)
	assert.Nil(t, adv)
}

func TestAdventureRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAdventureRepository(db)

	mock.ExpectExec(`DELETE FROM adventures WHERE id = \$1`).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM adventures WHERE id = \$1`).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "a1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// =============================================================================
// REVIEWS
// =============================================================================

func TestReviewRepository_ListByCommunity(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`FROM community_adventure_reviews\s+WHERE community_adventure_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs("c1", 100).
		WillReturnRows(sqlmock.NewRows(reviewCols).
			AddRow("r1", "u1", "c1", 4.5, "nice", testCreatedAt))

	reviews, err := repo.ListByCommunity(context.Background(), "c1", 100)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4.5, reviews[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)

	review := &model.CommunityReview{
		ID: "r1", UserID: "u1", CommunityAdventureID: "c1", Rating: 5, Text: "great", CreatedAt: testCreatedAt,
	}

	mock.ExpectQuery(`INSERT INTO community_adventure_reviews (.+) RETURNING`).
		WithArgs("r1", "u1", "c1", 5.0, "great", testCreatedAt).
		WillReturnRows(sqlmock.NewRows(reviewCols).
			AddRow("r1", "u1", "c1", 5.0, "great", testCreatedAt))

	require.NoError(t, repo.Create(context.Background(), review))
	assert.Equal(t, "great", review.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// =============================================================================
// PROFILES
// =============================================================================

func TestProfileRepository_Upsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	profile := model.NewProProfile("u1", testCreatedAt)

	mock.ExpectQuery(`INSERT INTO profiles (.+) ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs("u1", "pro", "active", true, testCreatedAt).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u1", "pro", "active", true, testCreatedAt))

	stored, err := repo.Upsert(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.ID)
	assert.True(t, stored.IsPro)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Upsert_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`INSERT INTO profiles`).WillReturnError(errors.New("permission denied"))

	_, err := repo.Upsert(context.Background(), model.NewProProfile("u1", testCreatedAt))
	assert.True(t, errors.Is(err, database.ErrQuery))
}

// =============================================================================
// ALBUMS
// =============================================================================

func TestAlbumRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlbumRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM albums WHERE id = \$1`).
		WithArgs("al1").
		WillReturnRows(sqlmock.NewRows(albumCols).
			AddRow("al1", "u1", "Summer", "", nil, []byte(`{a1,a2}`), testCreatedAt))

	album, err := repo.GetByID(context.Background(), "al1")
	require.NoError(t, err)
	require.NotNil(t, album)
	assert.Equal(t, []string{"a1", "a2"}, album.AdventureIDs)
	assert.Nil(t, album.CoverImage)
}

func TestAlbumRepository_ListByUser_EmptyArray(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlbumRepository(db)

	mock.ExpectQuery(`FROM albums\s+WHERE user_id = \$1`).
		WithArgs("u1", 100).
		WillReturnRows(sqlmock.NewRows(albumCols).
			AddRow("al1", "u1", "Summer", "", nil, []byte(`{}`), testCreatedAt))

	albums, err := repo.ListByUser(context.Background(), "u1", 100)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.NotNil(t, albums[0].AdventureIDs)
	assert.Empty(t, albums[0].AdventureIDs)
}

func TestAlbumRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlbumRepository(db)

	album := &model.Album{ID: "al1", UserID: "u1", Title: "Summer", AdventureIDs: []string{"a1"}, CreatedAt: testCreatedAt}

	mock.ExpectExec(`INSERT INTO albums`).
		WithArgs("al1", "u1", "Summer", "", nil, pq.Array([]string{"a1"}), testCreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), album))
	assert.NoError(t, mock.ExpectationsWereMet())
}
