package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kanjilens-backend/internal/config"
	"github.com/heartmarshall/kanjilens-backend/migrations"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate runs a goose command against the configured database. Status is
// written to out as a table.
func Migrate(ctx context.Context, configPath, command string, out io.Writer) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigratorFromPool(pool, migrations.FS, logger)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	switch command {
	case MigrateUp:
		return m.Up(ctx)
	case MigrateDown:
		return m.Down(ctx)
	case MigrateStatus:
		list, err := m.Status(ctx)
		if err != nil {
			return err
		}
		return writeStatus(out, list)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
}

func writeStatus(out io.Writer, list []postgres.MigrationStatus) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tAPPLIED\tFILE")
	for _, s := range list {
		applied := "no"
		if s.Applied {
			applied = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, applied, s.Path)
	}
	return tw.Flush()
}
