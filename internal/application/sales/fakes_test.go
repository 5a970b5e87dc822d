package sales

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

type fakeDrafts struct {
	mu sync.Mutex
	m  map[string]*Draft
}

func newFakeDrafts() *fakeDrafts { return &fakeDrafts{m: map[string]*Draft{}} }

func (f *fakeDrafts) Put(_ context.Context, d *Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[d.ID] = d
	return nil
}

func (f *fakeDrafts) Update(_ context.Context, id string, fn func(d *Draft) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.m[id]
	if !ok {
		return domain.ErrNotFound
	}
	return fn(d)
}

func (f *fakeDrafts) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.m, id)
	return nil
}

type fakeProducts struct {
	repository.ProductRepository
	m map[string]*entity.Product
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeClients struct {
	repository.ClientRepository
	m map[string]*entity.Client
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.m[id], nil
}

type fakeNegTypes struct {
	repository.NegotiationTypeRepository
	m map[string]*entity.NegotiationType
}

func (f *fakeNegTypes) GetByID(_ context.Context, id string) (*entity.NegotiationType, error) {
	return f.m[id], nil
}

type fakeSales struct {
	mu      sync.Mutex
	created []*entity.Sale
	failErr error
	lastOpt repository.ListOptions
}

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range f.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSales) List(_ context.Context, opts repository.ListOptions) ([]*entity.Sale, error) {
	f.lastOpt = opts
	return f.created, nil
}

func (f *fakeSales) Filter(_ context.Context, _ repository.Fields, opts repository.ListOptions) ([]*entity.Sale, error) {
	return f.List(context.Background(), opts)
}

// fakeTx ejecuta fn directamente contra el repositorio en memoria.
type fakeTx struct {
	sales *fakeSales
}

func (t *fakeTx) RunSale(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(t.sales)
}

type fakeReceipts struct {
	got *entity.Sale
}

func (f *fakeReceipts) SaleReceipt(_ context.Context, s *entity.Sale) ([]byte, error) {
	if s == nil {
		return nil, errors.New("venta nil")
	}
	f.got = s
	return []byte("%PDF-1.4"), nil
}
