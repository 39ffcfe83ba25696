package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

var (
	testNow      = time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC)
	errStoreDown = errors.New("store down")
)

func testClock() time.Time { return testNow }

// ============================================================================
// In-memory repositories
// ============================================================================

type memAdventures struct {
	mu   sync.Mutex
	rows map[string]*model.Adventure
	err  error
}

func newMemAdventures(rows ...*model.Adventure) *memAdventures {
	m := &memAdventures{rows: make(map[string]*model.Adventure)}
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return m
}

func (m *memAdventures) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.rows[id], nil
}

func (m *memAdventures) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Adventure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*model.Adventure
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memAdventures) Create(ctx context.Context, adventure *model.Adventure) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows[adventure.ID] = adventure
	return nil
}

func (m *memAdventures) Update(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.IsFavorite != nil {
		row.IsFavorite = patch.IsFavorite
	}
	if patch.IsCompleted != nil {
		row.IsCompleted = patch.IsCompleted
	}
	if patch.ScheduledFor != nil {
		row.ScheduledFor = patch.ScheduledFor
	}
	return row, nil
}

func (m *memAdventures) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

type memReviews struct {
	mu      sync.Mutex
	rows    []*model.CommunityReview
	err     error
	limitFn func(limit int)
}

func (m *memReviews) ListByCommunity(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.limitFn != nil {
		m.limitFn(limit)
	}
	var out []*model.CommunityReview
	for _, r := range m.rows {
		if r.CommunityAdventureID == communityID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memReviews) Create(ctx context.Context, review *model.CommunityReview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, review)
	return nil
}

type memProfiles struct {
	mu   sync.Mutex
	rows map[string]*model.Profile
	err  error
}

func (m *memProfiles) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.rows == nil {
		m.rows = make(map[string]*model.Profile)
	}
	m.rows[profile.ID] = profile
	return profile, nil
}

type memAlbums struct {
	mu   sync.Mutex
	rows map[string]*model.Album
	err  error
}

func (m *memAlbums) GetByID(ctx context.Context, id string) (*model.Album, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.rows[id], nil
}

func (m *memAlbums) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Album, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*model.Album
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memAlbums) Create(ctx context.Context, album *model.Album) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.rows == nil {
		m.rows = make(map[string]*model.Album)
	}
	m.rows[album.ID] = album
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

// ============================================================================
// Test server
// ============================================================================

type testEnv struct {
	adventures *memAdventures
	reviews    *memReviews
	profiles   *memProfiles
	albums     *memAlbums
	pinger     stubPinger
	backendURL string
	mux        *http.ServeMux
}

type envOpt func(*testEnv)

func withAdventures(rows ...*model.Adventure) envOpt {
	return func(e *testEnv) { e.adventures = newMemAdventures(rows...) }
}

func withReviews(rows ...*model.CommunityReview) envOpt {
	return func(e *testEnv) { e.reviews.rows = rows }
}

func withPingError(err error) envOpt {
	return func(e *testEnv) { e.pinger = stubPinger{err: err} }
}

// newTestEnv wires real services over in-memory repositories. backend may be
// nil, in which case the backend URL points at a closed server.
func newTestEnv(t *testing.T, backend http.Handler, opts ...envOpt) *testEnv {
	t.Helper()

	env := &testEnv{
		adventures: newMemAdventures(),
		reviews:    &memReviews{},
		profiles:   &memProfiles{},
		albums:     &memAlbums{},
	}
	for _, fn := range opts {
		fn(env)
	}

	if backend != nil {
		srv := httptest.NewServer(backend)
		t.Cleanup(srv.Close)
		env.backendURL = srv.URL
	} else {
		srv := httptest.NewServer(http.NotFoundHandler())
		env.backendURL = srv.URL
		srv.Close()
	}

	backendClient := service.NewBackendClient(service.BackendConfig{
		BaseURL: env.backendURL,
		Timeout: 5 * time.Second,
	})

	routes := &Routes{
		Health:     NewHealthHandler(env.pinger, database.DriverSupabase, backendClient),
		Adventures: NewAdventureHandler(service.NewAdventureService(service.AdventureServiceConfig{Repo: env.adventures, Clock: testClock})),
		Reviews:    NewReviewHandler(service.NewReviewService(service.ReviewServiceConfig{Repo: env.reviews, Clock: testClock})),
		Albums:     NewAlbumHandler(service.NewAlbumService(service.AlbumServiceConfig{Repo: env.albums, Clock: testClock})),
		Admin:      NewAdminHandler(service.NewAdminService(service.AdminServiceConfig{Profiles: env.profiles, Clock: testClock})),
		Proxy:      NewProxyHandler(backendClient, nil),
	}
	env.mux = routes.NewMux()
	return env
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)
	return rr
}
