package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/validate"
)

const defaultUnit = "UN"

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un producto. El código es único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price no puede ser negativo")
	}
	code := strings.TrimSpace(in.Code)
	if err := uc.ensureCodeFree(ctx, code, ""); err != nil {
		return nil, err
	}
	unit := strings.ToUpper(strings.TrimSpace(in.Unit))
	if unit == "" {
		unit = defaultUnit
	}
	now := uc.now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Unit:        unit,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes en la entrada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code != product.Code {
			if err := uc.ensureCodeFree(ctx, code, product.ID); err != nil {
				return nil, err
			}
		}
		product.Code = code
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.NewValidationError("price no puede ser negativo")
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Unit != nil {
		product.Unit = strings.ToUpper(strings.TrimSpace(*in.Unit))
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos; con q.Active filtra por estado.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.ProductListResponse, error) {
	opts := listOptions(q)
	var (
		list []*entity.Product
		err  error
	)
	if f := activeFilter(q); f != nil {
		list, err = uc.repo.Filter(ctx, f, opts)
	} else {
		list, err = uc.repo.List(ctx, opts)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: page(opts)}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *ProductUseCase) ensureCodeFree(ctx context.Context, code, selfID string) error {
	existing, err := uc.repo.Filter(ctx, repository.Fields{"code": code}, repository.ListOptions{Limit: 1})
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.ID != selfID {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Unit:        p.Unit,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
