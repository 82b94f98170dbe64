package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bodega-titos/consola/internal/infrastructure/migrate"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de la tabla de sesiones (PostgreSQL)",
	}
	cmd.AddCommand(
		migrateSub("up", "Aplica las migraciones pendientes", migrate.Up),
		migrateSub("down", "Revierte la última migración", migrate.Down),
		migrateSub("status", "Muestra el estado de las migraciones", migrate.Status),
	)
	return cmd
}

func migrateSub(use, short string, run func(ctx context.Context, dsn string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if err := run(cmd.Context(), cfg.DB.ConnectionString()); err != nil {
				log.Error().Err(err).Str("cmd", use).Msg("migración fallida")
				return err
			}
			log.Info().Str("cmd", use).Msg("migración completada")
			return nil
		},
	}
}
