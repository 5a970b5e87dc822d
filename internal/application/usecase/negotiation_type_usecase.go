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

// NegotiationTypeUseCase casos de uso CRUD para tipos de negociación.
type NegotiationTypeUseCase struct {
	repo repository.NegotiationTypeRepository
	now  func() time.Time
}

// NewNegotiationTypeUseCase construye el caso de uso.
func NewNegotiationTypeUseCase(repo repository.NegotiationTypeRepository) *NegotiationTypeUseCase {
	return &NegotiationTypeUseCase{repo: repo, now: time.Now}
}

// Create crea un tipo de negociación; el código se guarda en mayúsculas y es único.
func (uc *NegotiationTypeUseCase) Create(ctx context.Context, in dto.CreateNegotiationTypeRequest) (*dto.NegotiationTypeResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if err := uc.ensureCodeFree(ctx, code, ""); err != nil {
		return nil, err
	}
	now := uc.now()
	nt := &entity.NegotiationType{
		ID:          uuid.New().String(),
		Code:        code,
		Description: strings.TrimSpace(in.Description),
		Notes:       in.Notes,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, nt); err != nil {
		return nil, err
	}
	return toNegotiationTypeResponse(nt), nil
}

// GetByID obtiene un tipo de negociación.
func (uc *NegotiationTypeUseCase) GetByID(ctx context.Context, id string) (*dto.NegotiationTypeResponse, error) {
	nt, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNegotiationTypeResponse(nt), nil
}

// Update aplica los campos presentes.
func (uc *NegotiationTypeUseCase) Update(ctx context.Context, id string, in dto.UpdateNegotiationTypeRequest) (*dto.NegotiationTypeResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	nt, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*in.Code))
		if code != nt.Code {
			if err := uc.ensureCodeFree(ctx, code, nt.ID); err != nil {
				return nil, err
			}
		}
		nt.Code = code
	}
	if in.Description != nil {
		nt.Description = strings.TrimSpace(*in.Description)
	}
	if in.Notes != nil {
		nt.Notes = *in.Notes
	}
	if in.Active != nil {
		nt.Active = *in.Active
	}
	nt.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, nt); err != nil {
		return nil, err
	}
	return toNegotiationTypeResponse(nt), nil
}

// List lista tipos de negociación; con q.Active filtra por estado.
func (uc *NegotiationTypeUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.NegotiationTypeListResponse, error) {
	opts := listOptions(q)
	var (
		list []*entity.NegotiationType
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
	items := make([]dto.NegotiationTypeResponse, 0, len(list))
	for _, nt := range list {
		items = append(items, *toNegotiationTypeResponse(nt))
	}
	return &dto.NegotiationTypeListResponse{Items: items, Page: page(opts)}, nil
}

// Delete elimina un tipo de negociación. Las ventas conservan el nombre como instantánea.
func (uc *NegotiationTypeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *NegotiationTypeUseCase) get(ctx context.Context, id string) (*entity.NegotiationType, error) {
	nt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nt == nil {
		return nil, domain.ErrNotFound
	}
	return nt, nil
}

func (uc *NegotiationTypeUseCase) ensureCodeFree(ctx context.Context, code, selfID string) error {
	existing, err := uc.repo.Filter(ctx, repository.Fields{"code": code}, repository.ListOptions{Limit: 1})
	if err != nil {
		return err
	}
	for _, nt := range existing {
		if nt.ID != selfID {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func toNegotiationTypeResponse(nt *entity.NegotiationType) *dto.NegotiationTypeResponse {
	return &dto.NegotiationTypeResponse{
		ID:          nt.ID,
		Code:        nt.Code,
		Description: nt.Description,
		Notes:       nt.Notes,
		Active:      nt.Active,
		CreatedAt:   nt.CreatedAt,
		UpdatedAt:   nt.UpdatedAt,
	}
}
