// Command kanjilens runs the kanjilens API server and its maintenance tasks.
//
//	kanjilens serve                  start the HTTP server
//	kanjilens migrate up|down|status manage the database schema
//	kanjilens config                 print the environment variable reference
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kanjilens-backend/internal/app"
	"github.com/heartmarshall/kanjilens-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "kanjilens",
		Short:         "Kanji review and annotation API",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"),
		"path to the YAML config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.Run(cmd.Context(), configPath)
			},
		},
		newMigrateCmd(&configPath),
		&cobra.Command{
			Use:   "config",
			Short: "Print the configuration environment variables",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				text, err := config.Usage()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			},
		},
	)

	return root
}

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	for _, sub := range []struct{ name, short string }{
		{app.MigrateUp, "Apply all pending migrations"},
		{app.MigrateDown, "Roll back the most recent migration"},
		{app.MigrateStatus, "List migrations and whether they are applied"},
	} {
		name := sub.name
		cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				return app.Migrate(c.Context(), *configPath, name, c.OutOrStdout())
			},
		})
	}

	return cmd
}
