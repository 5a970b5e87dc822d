package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vendas-api/pkg/config"
	"github.com/jhoicas/vendas-api/pkg/logger"
)

const minPasswordLen = 6

// defaultNegotiationTypes condiciones habituales; se crean sólo las que falten por código.
var defaultNegotiationTypes = []entity.NegotiationType{
	{Code: "AV", Description: "À Vista"},
	{Code: "30D", Description: "30 dias"},
	{Code: "30-60", Description: "30/60 dias"},
	{Code: "CONS", Description: "Consignado", Notes: "Acerto na próxima visita"},
}

type seedEnv struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func withPool(ctx context.Context, fn func(ctx context.Context, env *seedEnv) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")
	pool, err := postgres.NewPool(ctx, cfg.DB, lg)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, &seedEnv{pool: pool, log: lg})
}

// createSup crea el único usuario SUP. Falla con ErrConflict si ya existe uno.
func createSup(ctx context.Context, users repository.UserRepository, name, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("email es requerido")
	}
	if len(password) < minPasswordLen {
		return nil, domain.NewValidationError(fmt.Sprintf("la contraseña debe tener al menos %d caracteres", minPasswordLen))
	}
	sups, err := users.Filter(ctx, repository.Fields{"role": entity.RoleSup}, repository.ListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(sups) > 0 {
		return nil, fmt.Errorf("ya existe un SUP (%s): %w", sups[0].Email, domain.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSup,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// seedNegotiationTypes crea los tipos por defecto cuyo código no exista y devuelve cuántos creó.
func seedNegotiationTypes(ctx context.Context, repo repository.NegotiationTypeRepository) (int, error) {
	created := 0
	for _, def := range defaultNegotiationTypes {
		existing, err := repo.Filter(ctx, repository.Fields{"code": def.Code}, repository.ListOptions{Limit: 1})
		if err != nil {
			return created, err
		}
		if len(existing) > 0 {
			continue
		}
		now := time.Now()
		nt := def
		nt.ID = uuid.NewString()
		nt.Active = true
		nt.CreatedAt = now
		nt.UpdatedAt = now
		if err := repo.Create(ctx, &nt); err != nil {
			return created, fmt.Errorf("crear %s: %w", def.Code, err)
		}
		created++
	}
	return created, nil
}
