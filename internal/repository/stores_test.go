package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/motionhq/motion/api/internal/config"
	"github.com/motionhq/motion/api/internal/database"
)

func TestConfigFrom_MapsEveryDriverSection(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver: "surrealdb",
		URL:    "postgres://motion@localhost/motion",
		Supabase: config.SupabaseConfig{
			URL:    "https://project.supabase.co",
			APIKey: "service-key",
		},
		Surreal: config.SurrealConfig{
			Host: "localhost", Port: "8000",
			Namespace: "motion", Database: "app",
			User: "root", Password: "secret",
		},
	}}

	got, err := ConfigFrom(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		Driver:   database.DriverSurrealDB,
		Supabase: database.SupabaseConfig{URL: "https://project.supabase.co", APIKey: "service-key"},
		Postgres: database.PostgresConfig{URL: "postgres://motion@localhost/motion"},
		Surreal: database.SurrealConfig{
			Host: "localhost", Port: "8000",
			User: "root", Password: "secret",
			Namespace: "motion", Database: "app",
		},
	}
	if got != want {
		t.Errorf("ConfigFrom() = %+v, want %+v", got, want)
	}
}

func TestConfigFrom_UnknownDriver(t *testing.T) {
	_, err := ConfigFrom(&config.Config{Database: config.DatabaseConfig{Driver: "mysql"}})
	if !errors.Is(err, database.ErrUnknownDriver) {
		t.Errorf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestOpen_Supabase(t *testing.T) {
	stores, err := Open(context.Background(), Config{
		Driver:   database.DriverSupabase,
		Supabase: database.SupabaseConfig{URL: "https://project.supabase.co", APIKey: "service-key"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stores.Driver != database.DriverSupabase {
		t.Errorf("expected supabase driver, got %s", stores.Driver)
	}
	if stores.Adventures == nil || stores.Reviews == nil || stores.Albums == nil || stores.Profiles == nil || stores.Pinger == nil {
		t.Errorf("expected every repository to be set: %+v", stores)
	}
	if err := stores.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestOpen_SupabaseMissingKey(t *testing.T) {
	_, err := Open(context.Background(), Config{
		Driver:   database.DriverSupabase,
		Supabase: database.SupabaseConfig{URL: "https://project.supabase.co"},
	})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestOpen_PostgresRequiresURL(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: database.DriverPostgres})
	if err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "mongo"})
	if !errors.Is(err, database.ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestWithPoolDefaults(t *testing.T) {
	cfg := withPoolDefaults(database.PostgresConfig{URL: "postgres://x", MaxOpenConns: 3})
	if cfg.MaxOpenConns != 3 {
		t.Errorf("explicit value should be kept, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 || cfg.ConnMaxLifetime == 0 {
		t.Errorf("expected defaults filled, got %+v", cfg)
	}
}
