package sales

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/sale"
)

type fixedRand int

func (f fixedRand) IntN(int) int { return int(f) }

var fixedNow = time.Date(2026, 3, 7, 10, 30, 0, 0, time.UTC)

type env struct {
	uc     *DraftUseCase
	sales  *fakeSales
	seller *entity.User
}

func newEnv(t *testing.T) *env {
	t.Helper()
	products := &fakeProducts{m: map[string]*entity.Product{
		"p1": {ID: "p1", Code: "A1", Name: "Arroz", Price: decimal.RequireFromString("10.50"), Stock: 2, Unit: "UN", Active: true},
		"p2": {ID: "p2", Code: "F1", Name: "Feijão", Price: decimal.RequireFromString("7.25"), Stock: 10, Unit: "KG", Active: true},
		"p3": {ID: "p3", Code: "Z0", Name: "Sem estoque", Price: decimal.NewFromInt(1), Stock: 0, Active: true},
		"p4": {ID: "p4", Code: "IN", Name: "Inativo", Price: decimal.NewFromInt(1), Stock: 5, Active: false},
	}}
	clients := &fakeClients{m: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Mercado Central", Active: true},
		"c2": {ID: "c2", Name: "Inativo", Active: false},
	}}
	negTypes := &fakeNegTypes{m: map[string]*entity.NegotiationType{
		"n1": {ID: "n1", Code: "AV", Description: "À vista", Active: true},
	}}
	sales := &fakeSales{}
	asm := sale.NewAssembler("VEN", func() time.Time { return fixedNow }, fixedRand(42), func() string { return "sale-1" })
	uc := NewDraftUseCase(newFakeDrafts(), products, clients, negTypes, &fakeTx{sales: sales}, asm, zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return &env{
		uc:     uc,
		sales:  sales,
		seller: &entity.User{ID: "u1", FullName: "Ana Souza", Role: entity.RoleVendedor, Active: true},
	}
}

func (e *env) draftInProducts(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	d, err := e.uc.Create(ctx, e.seller)
	require.NoError(t, err)
	_, err = e.uc.ConfirmHeader(ctx, e.seller, d.ID, dto.ConfirmHeaderRequest{ClientID: "c1", NegotiationTypeID: "n1"})
	require.NoError(t, err)
	return d.ID
}

func TestDraft_CaminoFeliz(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.draftInProducts(t)

	_, err := e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p1"})
	require.NoError(t, err)
	_, err = e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p2"})
	require.NoError(t, err)
	r, err := e.uc.SetQuantity(ctx, e.seller, id, "p2", dto.SetQuantityRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, r.ItemCount, "cuenta líneas, no unidades")
	assert.True(t, r.Total.Equal(decimal.RequireFromString("32.25")))
	require.NotNil(t, r.Header)
	assert.Equal(t, "Mercado Central", r.Header.ClientName)
	assert.Equal(t, "À vista", r.Header.NegotiationTypeName)

	_, err = e.uc.ProceedToCheckout(ctx, e.seller, id)
	require.NoError(t, err)
	done, err := e.uc.Submit(ctx, e.seller, id)
	require.NoError(t, err)

	assert.Equal(t, string(sale.StepDone), done.Step)
	require.NotNil(t, done.Sale)
	assert.Equal(t, "VEN-20260307-00042", done.Sale.Number)
	assert.Equal(t, "Ana Souza", done.Sale.SellerName)
	assert.Equal(t, 2, done.Sale.ItemCount)
	require.Len(t, e.sales.created, 1)

	again, err := e.uc.Restart(ctx, e.seller, id)
	require.NoError(t, err)
	assert.Equal(t, string(sale.StepHeader), again.Step)
	assert.Empty(t, again.Lines)
	assert.Nil(t, again.Sale)
}

func TestDraft_ConfirmHeader_ClienteInactivo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	d, err := e.uc.Create(ctx, e.seller)
	require.NoError(t, err)

	_, err = e.uc.ConfirmHeader(ctx, e.seller, d.ID, dto.ConfirmHeaderRequest{ClientID: "c2", NegotiationTypeID: "n1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.ConfirmHeader(ctx, e.seller, d.ID, dto.ConfirmHeaderRequest{ClientID: "c1", NegotiationTypeID: "nx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.uc.Get(ctx, e.seller, d.ID)
	require.NoError(t, err)
	assert.Equal(t, string(sale.StepHeader), got.Step)
	assert.False(t, got.HeaderLocked)
}

func TestDraft_AddProduct_TopeDeStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.draftInProducts(t)

	_, err := e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p1"})
	require.NoError(t, err)
	r, err := e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p1"})
	require.NoError(t, err)
	require.Len(t, r.Lines, 1)
	assert.Equal(t, 2, r.Lines[0].Quantity)
	assert.True(t, r.Lines[0].AtCeiling)

	_, err = e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p3"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p4"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.uc.Get(ctx, e.seller, id)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ItemCount)
	assert.Equal(t, 2, got.Lines[0].Quantity)
}

func TestDraft_SetQuantity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.draftInProducts(t)
	_, err := e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p2"})
	require.NoError(t, err)

	_, err = e.uc.SetQuantity(ctx, e.seller, id, "p2", dto.SetQuantityRequest{Quantity: 11})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	r, err := e.uc.SetQuantity(ctx, e.seller, id, "p2", dto.SetQuantityRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, r.Lines)

	_, err = e.uc.ProceedToCheckout(ctx, e.seller, id)
	assert.Error(t, err)
}

func TestDraft_OtroUsuarioNoLoVe(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.draftInProducts(t)
	other := &entity.User{ID: "u2", Role: entity.RoleVendedor, Active: true}

	_, err := e.uc.Get(ctx, other, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, e.uc.Discard(ctx, other, id), domain.ErrNotFound)

	require.NoError(t, e.uc.Discard(ctx, e.seller, id))
	_, err = e.uc.Get(ctx, e.seller, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraft_SubmitFalloRemoto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.draftInProducts(t)
	_, err := e.uc.AddProduct(ctx, e.seller, id, dto.AddProductRequest{ProductID: "p2"})
	require.NoError(t, err)
	_, err = e.uc.ProceedToCheckout(ctx, e.seller, id)
	require.NoError(t, err)

	e.sales.failErr = errors.New("conexión rechazada")
	_, err = e.uc.Submit(ctx, e.seller, id)
	require.Error(t, err)
	assert.True(t, domain.IsRemote(err))

	got, err := e.uc.Get(ctx, e.seller, id)
	require.NoError(t, err)
	assert.Equal(t, string(sale.StepCheckout), got.Step)
	assert.Len(t, got.Lines, 1)

	e.sales.failErr = nil
	done, err := e.uc.Submit(ctx, e.seller, id)
	require.NoError(t, err)
	assert.Equal(t, string(sale.StepDone), done.Step)
}

func TestQuery_ExportCSV(t *testing.T) {
	sales := &fakeSales{created: []*entity.Sale{{
		ID:                  "s1",
		Number:              "VEN-20260307-00042",
		SellerName:          "Ana Souza",
		ClientName:          "Mercado Central",
		NegotiationTypeName: "À vista",
		Total:               decimal.RequireFromString("32.25"),
		Items:               []entity.SaleItem{{Quantity: 1}, {Quantity: 3}},
		CreatedAt:           fixedNow,
	}}}
	uc := NewQueryUseCase(sales, &fakeReceipts{})
	uc.now = func() time.Time { return fixedNow }

	body, name, err := uc.ExportCSV(context.Background(), dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "vendas_20260307.csv", name)
	assert.Equal(t, 0, sales.lastOpt.Limit)
	assert.Equal(t, "-created_date", sales.lastOpt.Sort)

	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "VEN-20260307-00042", rows[1][0])
	assert.Equal(t, "07/03/2026 10:30", rows[1][1])
	assert.Equal(t, "2", rows[1][5], "Itens = líneas de la venta")
	assert.Equal(t, "R$ 32,25", rows[1][6])
}

func TestQuery_GetYReceipt(t *testing.T) {
	s := &entity.Sale{ID: "s1", Number: "VEN-20260307-00001", Items: []entity.SaleItem{{Quantity: 2}, {Quantity: 5}}}
	receipts := &fakeReceipts{}
	uc := NewQueryUseCase(&fakeSales{created: []*entity.Sale{s}}, receipts)

	got, err := uc.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ItemCount)

	_, err = uc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pdf, name, err := uc.ReceiptPDF(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "VEN-20260307-00001.pdf", name)
	assert.NotEmpty(t, pdf)
	assert.Same(t, s, receipts.got)
}
