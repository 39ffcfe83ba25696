// Package config manages application configuration for the Motion API.
//
// Configuration is read from the environment after optional .env.local and
// .env files are loaded with godotenv. Variables already set in the process
// environment always win.
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: store driver plus Supabase, Postgres and SurrealDB settings
//   - BackendConfig: AI/places backend URL, timeout and monitor schedule
//   - RedisConfig: optional idempotency store
//   - RateLimitConfig: per-client request rate
//
// # Environment Variables
//
//	SERVER_PORT                - HTTP server port (default: 8080)
//	DB_DRIVER                  - supabase, postgres or surrealdb (default: supabase)
//	SUPABASE_URL               - falls back to NEXT_PUBLIC_SUPABASE_URL
//	SUPABASE_SERVICE_ROLE_KEY  - falls back to the anon keys
//	DATABASE_URL               - Postgres DSN for the postgres driver and migrations
//	BACKEND_URL                - falls back to NEXT_PUBLIC_API_URL
//	BACKEND_MONITOR_SCHEDULE   - cron spec; empty disables the monitor
//	REDIS_URL                  - enables the shared idempotency store
//	RATE_LIMIT_RPS, RATE_LIMIT_BURST
//	LOG_LEVEL                  - debug, info, warn or error
package config
