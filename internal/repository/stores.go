package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/motionhq/motion/api/internal/config"
	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/repository/postgres"
	"github.com/motionhq/motion/api/internal/repository/supabase"
	"github.com/motionhq/motion/api/internal/repository/surreal"
	"github.com/motionhq/motion/api/internal/service"
)

// Config selects a driver and carries the settings each driver needs
type Config struct {
	Driver   database.Driver
	Supabase database.SupabaseConfig
	Postgres database.PostgresConfig
	Surreal  database.SurrealConfig
}

// ConfigFrom maps application config onto the store factory
func ConfigFrom(cfg *config.Config) (Config, error) {
	driver, err := cfg.Driver()
	if err != nil {
		return Config{}, err
	}

	db := cfg.Database
	return Config{
		Driver: driver,
		Supabase: database.SupabaseConfig{
			URL:    db.Supabase.URL,
			APIKey: db.Supabase.APIKey,
		},
		Postgres: database.PostgresConfig{
			URL: db.URL,
		},
		Surreal: database.SurrealConfig{
			Host:      db.Surreal.Host,
			Port:      db.Surreal.Port,
			User:      db.Surreal.User,
			Password:  db.Surreal.Password,
			Namespace: db.Surreal.Namespace,
			Database:  db.Surreal.Database,
		},
	}, nil
}

// Stores holds one repository per entity, all backed by the same driver
type Stores struct {
	Driver     database.Driver
	Adventures service.AdventureRepository
	Reviews    service.ReviewRepository
	Albums     service.AlbumRepository
	Profiles   service.ProfileRepository
	Pinger     database.Pinger

	close func() error
}

// Close releases the underlying connection, if any
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the configured store and builds its repositories
func Open(ctx context.Context, cfg Config) (*Stores, error) {
	switch cfg.Driver {
	case database.DriverSupabase:
		client, err := database.NewSupabaseClient(cfg.Supabase)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Driver:     cfg.Driver,
			Adventures: supabase.NewAdventureRepository(client),
			Reviews:    supabase.NewReviewRepository(client),
			Albums:     supabase.NewAlbumRepository(client),
			Profiles:   supabase.NewProfileRepository(client),
			Pinger:     client,
		}, nil

	case database.DriverPostgres:
		pg, err := database.NewPostgres(ctx, withPoolDefaults(cfg.Postgres))
		if err != nil {
			return nil, err
		}
		return &Stores{
			Driver:     cfg.Driver,
			Adventures: postgres.NewAdventureRepository(pg.DB),
			Reviews:    postgres.NewReviewRepository(pg.DB),
			Albums:     postgres.NewAlbumRepository(pg.DB),
			Profiles:   postgres.NewProfileRepository(pg.DB),
			Pinger:     pg,
			close:      pg.Close,
		}, nil

	case database.DriverSurrealDB:
		db := database.NewSurrealDB(cfg.Surreal)
		if err := db.Connect(ctx); err != nil {
			return nil, err
		}
		return &Stores{
			Driver:     cfg.Driver,
			Adventures: surreal.NewAdventureRepository(db),
			Reviews:    surreal.NewReviewRepository(db),
			Albums:     surreal.NewAlbumRepository(db),
			Profiles:   surreal.NewProfileRepository(db),
			Pinger:     db,
			close:      db.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", database.ErrUnknownDriver, cfg.Driver)
}

func withPoolDefaults(cfg database.PostgresConfig) database.PostgresConfig {
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 10
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 5
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = 30 * time.Minute
	}
	return cfg
}
