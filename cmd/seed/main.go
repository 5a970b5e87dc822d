// seed prepara una base nueva: aplica migraciones, crea el usuario SUP y carga los
// tipos de negociación por defecto.
//
// Uso:
//
//	go run ./cmd/seed migrate
//	go run ./cmd/seed create-sup --email sup@empresa.com --password secreto --name "Nombre"
//	go run ./cmd/seed negotiation-types
//
// La conexión se toma de la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/vendas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vendas-api/pkg/config"
	"github.com/jhoicas/vendas-api/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "migraciones y datos iniciales de vendas-api",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "aplica las migraciones embebidas",
				Action: runMigrate,
			},
			{
				Name:  "create-sup",
				Usage: "crea el usuario SUP (sólo puede existir uno)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "name", Value: "Supervisor"},
				},
				Action: runCreateSup,
			},
			{
				Name:   "negotiation-types",
				Usage:  "carga los tipos de negociación por defecto que falten",
				Action: runNegotiationTypes,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func runMigrate(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return postgres.Migrate(cfg.DB.ConnectionString(), lg.Component("migrate"))
}

func runCreateSup(c *cli.Context) error {
	return withPool(c.Context, func(ctx context.Context, env *seedEnv) error {
		u, err := createSup(ctx, postgres.NewUserRepository(env.pool), c.String("name"), c.String("email"), c.String("password"))
		if err != nil {
			return err
		}
		env.log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("SUP creado")
		return nil
	})
}

func runNegotiationTypes(c *cli.Context) error {
	return withPool(c.Context, func(ctx context.Context, env *seedEnv) error {
		n, err := seedNegotiationTypes(ctx, postgres.NewNegotiationTypeRepository(env.pool))
		if err != nil {
			return err
		}
		env.log.Info().Int("created", n).Msg("tipos de negociación")
		return nil
	})
}
