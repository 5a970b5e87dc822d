package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
)

func TestClientUseCase_Create(t *testing.T) {
	uc := NewClientUseCase(newMemClients())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateClientRequest{
		Name:     "  Mercado Central ",
		Document: " 12.345.678/0001-90 ",
		Email:    "Compras@Mercado.COM",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Mercado Central", out.Name)
	assert.Equal(t, "12.345.678/0001-90", out.Document)
	assert.Equal(t, "compras@mercado.com", out.Email)
	assert.True(t, out.Active)

	_, err = uc.Create(ctx, dto.CreateClientRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateClientRequest{Name: "X", Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientUseCase_UpdateParcial(t *testing.T) {
	uc := NewClientUseCase(newMemClients())
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Padaria Sol", Phone: "11 9999-0000"})
	require.NoError(t, err)

	email := "CONTATO@SOL.COM"
	inactive := false
	out, err := uc.Update(ctx, c.ID, dto.UpdateClientRequest{Email: &email, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "contato@sol.com", out.Email)
	assert.False(t, out.Active)
	assert.Equal(t, "Padaria Sol", out.Name, "los campos ausentes no cambian")
	assert.Equal(t, "11 9999-0000", out.Phone)

	empty := ""
	_, err = uc.Update(ctx, c.ID, dto.UpdateClientRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "nope", dto.UpdateClientRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUseCase_ListYDelete(t *testing.T) {
	repo := newMemClients()
	uc := NewClientUseCase(repo)
	ctx := context.Background()
	inactive := false
	a, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Ativo"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateClientRequest{Name: "Inativo", Active: &inactive})
	require.NoError(t, err)

	all, err := uc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.Empty(t, repo.filters)

	active := true
	only, err := uc.List(ctx, dto.ListQuery{Active: &active})
	require.NoError(t, err)
	require.Len(t, only.Items, 1)
	assert.Equal(t, "Ativo", only.Items[0].Name)

	require.NoError(t, uc.Delete(ctx, a.ID))
	assert.ErrorIs(t, uc.Delete(ctx, a.ID), domain.ErrNotFound)
	_, err = uc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
