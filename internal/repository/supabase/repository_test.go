package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *database.SupabaseClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := database.NewSupabaseClient(database.SupabaseConfig{URL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return client
}

// === Adventures ===

func TestAdventureRepository_GetByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/adventures", r.URL.Path)
		assert.Equal(t, "eq.adv-1", r.URL.Query().Get("id"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{
			"id": "adv-1",
			"user_id": "u1",
			"title": "Harbor walk",
			"description": "Boats",
			"estimated_duration": null,
			"estimated_cost": "$",
			"steps": [{"title": "Coffee", "time": "9:00"}],
			"created_at": "2025-06-01T10:00:00.123456+00:00",
			"scheduled_for": null,
			"is_completed": true,
			"is_favorite": null
		}]`))
	})
	repo := NewAdventureRepository(client)

	adv, err := repo.GetByID(context.Background(), "adv-1")
	require.NoError(t, err)
	require.NotNil(t, adv)
	assert.Equal(t, "Harbor walk", adv.Title)
	assert.Nil(t, adv.EstimatedDuration)
	require.NotNil(t, adv.EstimatedCost)
	assert.Equal(t, "$", *adv.EstimatedCost)
	require.Len(t, adv.Steps, 1)
	assert.Equal(t, "Coffee", adv.Steps[0].Title)
	assert.Equal(t, 2025, adv.CreatedAt.Year())

	view := adv.View()
	assert.Equal(t, model.DefaultEstimatedDuration, view.EstimatedDuration)
	assert.True(t, view.IsCompleted)
	assert.False(t, view.IsFavorite)
}

func TestAdventureRepository_GetByID_Missing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	adv, err := NewAdventureRepository(client).GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, adv)
}

func TestAdventureRepository_ListByUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.u1", q.Get("user_id"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "50", q.Get("limit"))
		_, _ = w.Write([]byte(`[{"id":"a2","created_at":"2025-06-02T00:00:00Z"},{"id":"a1","created_at":"2025-06-01T00:00:00Z"}]`))
	})

	list, err := NewAdventureRepository(client).ListByUser(context.Background(), "u1", 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID)
}

func TestAdventureRepository_UpdateAndDelete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"is_favorite":true}`, string(body))
			_, _ = w.Write([]byte(`[{"id":"a1","is_favorite":true,"created_at":"2025-06-01T00:00:00Z"}]`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	repo := NewAdventureRepository(client)

	fav := true
	adv, err := repo.Update(context.Background(), "a1", &model.AdventurePatch{IsFavorite: &fav})
	require.NoError(t, err)
	require.NotNil(t, adv)
	assert.True(t, *adv.IsFavorite)

	deleted, err := repo.Delete(context.Background(), "a1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// === Reviews ===

func TestReviewRepository_ListByCommunity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/community_adventure_reviews", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "eq.c1", q.Get("community_adventure_id"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "100", q.Get("limit"))
		_, _ = w.Write([]byte(`[{"id":"r1","rating":5,"text":"wow","created_at":"2025-06-01T00:00:00Z"}]`))
	})

	reviews, err := NewReviewRepository(client).ListByCommunity(context.Background(), "c1", 100)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5.0, reviews[0].Rating)
}

func TestReviewRepository_Create_EchoesStoredRow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var sent map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "c1", sent["community_adventure_id"])
		assert.Equal(t, "u1", sent["user_id"])

		sent["created_at"] = "2025-06-01T12:00:00.5+00:00"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]interface{}{sent})
	})

	review := &model.CommunityReview{
		ID:                   "r1",
		UserID:               "u1",
		CommunityAdventureID: "c1",
		Rating:               3,
		Text:                 "ok",
		CreatedAt:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewReviewRepository(client).Create(context.Background(), review))
	assert.Equal(t, 500*time.Millisecond, time.Duration(review.CreatedAt.Nanosecond()))
	assert.Equal(t, "ok", review.Text)
}

func TestReviewRepository_Create_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"new row violates row-level security policy"}`))
	})

	err := NewReviewRepository(client).Create(context.Background(), &model.CommunityReview{})
	assert.True(t, errors.Is(err, database.ErrQuery))
}

// === Profiles ===

func TestProfileRepository_Upsert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "id", r.URL.Query().Get("on_conflict"))
		assert.Contains(t, r.Header.Get("Prefer"), "resolution=merge-duplicates")

		var sent map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "pro", sent["subscription_tier"])
		assert.Equal(t, "active", sent["subscription_status"])
		assert.Equal(t, true, sent["is_pro"])
		_ = json.NewEncoder(w).Encode([]interface{}{sent})
	})

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	profile, err := NewProfileRepository(client).Upsert(context.Background(), model.NewProProfile("u1", now))
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.True(t, profile.IsPro)
}

func TestProfileRepository_Upsert_EmptyReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := NewProfileRepository(client).Upsert(context.Background(), model.NewProProfile("u1", time.Now()))
	assert.Error(t, err)
}

// === Albums ===

func TestAlbumRepository_CreateAndGet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var sent map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			assert.Equal(t, []interface{}{}, sent["adventure_ids"])
			_ = json.NewEncoder(w).Encode([]interface{}{sent})
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"al1","title":"Summer","adventure_ids":["a1"],"created_at":"2025-06-01T00:00:00Z"}]`))
		}
	})
	repo := NewAlbumRepository(client)

	album := &model.Album{ID: "al1", UserID: "u1", Title: "Summer", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(context.Background(), album))
	assert.Equal(t, "al1", album.ID)

	got, err := repo.GetByID(context.Background(), "al1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, got.AdventureIDs)
}

func TestDecodeRows_Invalid(t *testing.T) {
	_, err := decodeRows[model.Album]([]byte(`{"not":"an array"}`))
	assert.True(t, errors.Is(err, database.ErrQuery))
}
