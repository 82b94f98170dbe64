package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bodega-titos/consola/pkg/config"
	"github.com/bodega-titos/consola/pkg/logger"
)

// @title        Bodega Tito's consola
// @version      1.0
// @description  Endpoints JSON de la consola de Bodega Tito's. Requieren la cookie de sesión.
// @BasePath     /
func main() {
	root := &cobra.Command{
		Use:           "consola",
		Short:         "Consola de gestión de Bodega Tito's",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap carga la configuración y arma el logger de la aplicación.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	level := "info"
	if !cfg.App.IsProduction() {
		level = "debug"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
	})
	return cfg, log, nil
}
