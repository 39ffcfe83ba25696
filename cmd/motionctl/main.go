// Package main provides motionctl, the operator CLI for the Motion API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/motionhq/motion/api/internal/config"
	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/repository"
	"github.com/motionhq/motion/api/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "motionctl",
		Short:         "Operator tools for the Motion API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(grantProCmd(), migrateCmd(), checkBackendCmd())
	return cmd
}

// loadConfig reads dotenv files and the environment the same way the server does
func loadConfig() (*config.Config, error) {
	return config.Load()
}

func grantProCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "grant-pro",
		Short: "Grant a user the pro subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			storeCfg, err := repository.ConfigFrom(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			stores, err := repository.Open(ctx, storeCfg)
			if err != nil {
				return err
			}
			defer func() { _ = stores.Close() }()

			admin := service.NewAdminService(service.AdminServiceConfig{Profiles: stores.Profiles})
			profile, err := admin.GrantPro(ctx, userID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), profile)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to upgrade")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func migrateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the Postgres schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrationDirection(args[0])

			if dryRun {
				names, err := database.MigrationNames(direction)
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := database.Migrate(cfg.Database.URL, direction); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", direction)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the migration files without applying them")
	return cmd
}

func checkBackendCmd() *cobra.Command {
	var (
		backendURL string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check-backend",
		Short: "Probe the AI/places backend health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if backendURL == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				backendURL = cfg.Backend.URL
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client := service.NewBackendClient(service.BackendConfig{BaseURL: backendURL, Timeout: timeout})
			result, err := client.CheckHealth(ctx)
			if werr := writeJSON(cmd.OutOrStdout(), result); werr != nil {
				return werr
			}
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("backend responded with status %d", result.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backendURL, "url", "", "Backend base URL (defaults to BACKEND_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
