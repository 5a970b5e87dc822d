package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
)

func TestProductUseCase_Create(t *testing.T) {
	repo := newMemProducts()
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Code:  " A1 ",
		Name:  "Arroz 5kg",
		Price: decimal.RequireFromString("25.90"),
		Stock: 12,
		Unit:  "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, "A1", out.Code)
	assert.Equal(t, "KG", out.Unit)
	assert.True(t, out.Active)
	assert.NotEmpty(t, out.ID)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "A1", Name: "Outro", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_CreateValidaciones(t *testing.T) {
	uc := NewProductUseCase(newMemProducts())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Sem código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "X", Name: "Negativo", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "Y", Name: "Stock", Stock: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(ctx, dto.CreateProductRequest{Code: "Z", Name: "Sem unidade"})
	require.NoError(t, err)
	assert.Equal(t, "UN", out.Unit)
}

func TestProductUseCase_Update(t *testing.T) {
	repo := newMemProducts()
	uc := NewProductUseCase(repo)
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateProductRequest{Code: "A", Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "B", Name: "B"})
	require.NoError(t, err)

	code := "B"
	_, err = uc.Update(ctx, a.ID, dto.UpdateProductRequest{Code: &code})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	stock := 7
	inactive := false
	out, err := uc.Update(ctx, a.ID, dto.UpdateProductRequest{Stock: &stock, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Stock)
	assert.False(t, out.Active)
	assert.Equal(t, "A", out.Name)

	_, err = uc.Update(ctx, "nope", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ListYDelete(t *testing.T) {
	repo := newMemProducts()
	uc := NewProductUseCase(repo)
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateProductRequest{Code: "A", Name: "Arroz"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "F", Name: "Feijão"})
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.ListQuery{Search: "arr"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "-created_date", repo.lastOpt.Sort)
	assert.Equal(t, 100, list.Page.Limit)

	active := true
	_, err = uc.List(ctx, dto.ListQuery{Active: &active, Limit: 900})
	require.NoError(t, err)
	assert.Equal(t, 500, repo.lastOpt.Limit)

	require.NoError(t, uc.Delete(ctx, a.ID))
	assert.ErrorIs(t, uc.Delete(ctx, a.ID), domain.ErrNotFound)
}
