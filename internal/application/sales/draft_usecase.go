package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/ports"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/internal/domain/sale"
	"github.com/jhoicas/vendas-api/pkg/validate"
)

// DraftUseCase conduce los borradores de venta del lado del servidor.
//
// El tope de stock se aplica aquí y no en el carrito: agregar con la línea en su
// tope (o con stock 0) y fijar una cantidad mayor al stock instantáneo devuelven
// domain.ErrInsufficientStock. El stock no se verifica otra vez contra el almacén
// al confirmar.
type DraftUseCase struct {
	drafts    DraftStore
	products  repository.ProductRepository
	clients   repository.ClientRepository
	negTypes  repository.NegotiationTypeRepository
	tx        ports.SaleTxRunner
	assembler *sale.Assembler
	log       zerolog.Logger
	now       func() time.Time
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(
	drafts DraftStore,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	negTypes repository.NegotiationTypeRepository,
	tx ports.SaleTxRunner,
	assembler *sale.Assembler,
	log zerolog.Logger,
) *DraftUseCase {
	return &DraftUseCase{
		drafts:    drafts,
		products:  products,
		clients:   clients,
		negTypes:  negTypes,
		tx:        tx,
		assembler: assembler,
		log:       log,
		now:       time.Now,
	}
}

// Create abre un borrador nuevo en HEADER.
func (uc *DraftUseCase) Create(ctx context.Context, actor *entity.User) (*dto.DraftResponse, error) {
	now := uc.now()
	d := &Draft{
		ID:        uuid.New().String(),
		OwnerID:   actor.ID,
		Flow:      sale.NewFlow(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.drafts.Put(ctx, d); err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

// Get estado actual del borrador.
func (uc *DraftUseCase) Get(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(*Draft) error { return nil })
}

// ConfirmHeader resuelve cliente y tipo de negociación en el almacén, toma sus nombres
// como instantánea y bloquea la cabecera.
func (uc *DraftUseCase) ConfirmHeader(ctx context.Context, actor *entity.User, id string, in dto.ConfirmHeaderRequest) (*dto.DraftResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.Active {
		return nil, domain.NewValidationError("cliente inexistente o inactivo")
	}
	nt, err := uc.negTypes.GetByID(ctx, in.NegotiationTypeID)
	if err != nil {
		return nil, err
	}
	if nt == nil || !nt.Active {
		return nil, domain.NewValidationError("tipo de negociación inexistente o inactivo")
	}
	h := sale.Header{
		ClientID:            client.ID,
		ClientName:          client.Name,
		NegotiationTypeID:   nt.ID,
		NegotiationTypeName: nt.Description,
	}
	return uc.mutate(ctx, actor, id, func(d *Draft) error {
		return d.Flow.ConfirmHeader(h)
	})
}

// BackToHeader vuelve a la cabecera (sólo lectura).
func (uc *DraftUseCase) BackToHeader(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error { return d.Flow.BackToHeader() })
}

// ResumeProducts regresa a la selección de productos.
func (uc *DraftUseCase) ResumeProducts(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error { return d.Flow.ResumeProducts() })
}

// AddProduct agrega una unidad de un producto activo.
func (uc *DraftUseCase) AddProduct(ctx context.Context, actor *entity.User, id string, in dto.AddProductRequest) (*dto.DraftResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, domain.NewValidationError("producto inexistente o inactivo")
	}
	return uc.mutate(ctx, actor, id, func(d *Draft) error {
		if line, ok := d.Flow.Cart().Line(p.ID); ok {
			if line.AtCeiling() {
				return stockError(line.ProductName, line.Stock)
			}
		} else if p.Stock <= 0 {
			return stockError(p.Name, p.Stock)
		}
		return d.Flow.AddProduct(*p)
	})
}

// SetQuantity fija la cantidad de una línea; <= 0 la quita.
func (uc *DraftUseCase) SetQuantity(ctx context.Context, actor *entity.User, id, productID string, in dto.SetQuantityRequest) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error {
		if line, ok := d.Flow.Cart().Line(productID); ok && in.Quantity > line.Stock {
			return stockError(line.ProductName, line.Stock)
		}
		return d.Flow.SetQuantity(productID, in.Quantity)
	})
}

// RemoveLine quita una línea del carrito.
func (uc *DraftUseCase) RemoveLine(ctx context.Context, actor *entity.User, id, productID string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error { return d.Flow.RemoveLine(productID) })
}

// ProceedToCheckout pasa al resumen; exige carrito no vacío.
func (uc *DraftUseCase) ProceedToCheckout(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error { return d.Flow.ProceedToCheckout() })
}

// BackToProducts vuelve del resumen al carrito.
func (uc *DraftUseCase) BackToProducts(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error { return d.Flow.BackToProducts() })
}

// Submit arma la venta con el actor como vendedor y la persiste en una transacción.
// Si el almacén falla devuelve *domain.RemoteError y el borrador queda en CHECKOUT.
func (uc *DraftUseCase) Submit(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	persist := func(ctx context.Context, s *entity.Sale) error {
		return uc.tx.RunSale(ctx, func(repo repository.SaleRepository) error {
			return repo.Create(ctx, s)
		})
	}
	return uc.mutate(ctx, actor, id, func(d *Draft) error {
		s, err := d.Flow.Submit(ctx, uc.assembler, actor, persist)
		if err != nil {
			if domain.IsRemote(err) {
				uc.log.Error().Err(err).Str("draft_id", d.ID).Str("user_id", actor.ID).Msg("venta no registrada")
			}
			return err
		}
		uc.log.Info().
			Str("sale_number", s.Number).
			Str("user_id", actor.ID).
			Str("total", s.Total.StringFixed(2)).
			Int("items", len(s.Items)).
			Msg("venta registrada")
		return nil
	})
}

// Restart reemplaza el flujo terminado por uno nuevo en HEADER.
func (uc *DraftUseCase) Restart(ctx context.Context, actor *entity.User, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, actor, id, func(d *Draft) error {
		next, err := d.Flow.Restart()
		if err != nil {
			return err
		}
		d.Flow = next
		return nil
	})
}

// Discard descarta el borrador.
func (uc *DraftUseCase) Discard(ctx context.Context, actor *entity.User, id string) error {
	if _, err := uc.Get(ctx, actor, id); err != nil {
		return err
	}
	return uc.drafts.Delete(ctx, id)
}

// mutate aplica fn al borrador del actor y devuelve el estado resultante.
// Un borrador de otro usuario se reporta como inexistente.
func (uc *DraftUseCase) mutate(ctx context.Context, actor *entity.User, id string, fn func(d *Draft) error) (*dto.DraftResponse, error) {
	var out *dto.DraftResponse
	err := uc.drafts.Update(ctx, id, func(d *Draft) error {
		if d.OwnerID != actor.ID {
			return domain.ErrNotFound
		}
		if err := fn(d); err != nil {
			return err
		}
		d.UpdatedAt = uc.now()
		out = toDraftResponse(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func stockError(name string, stock int) error {
	return fmt.Errorf("%w: %s (disponible %d)", domain.ErrInsufficientStock, name, stock)
}

func toDraftResponse(d *Draft) *dto.DraftResponse {
	f := d.Flow
	c := f.Cart()
	lines := c.Lines()
	out := &dto.DraftResponse{
		ID:           d.ID,
		Step:         string(f.Step()),
		HeaderLocked: f.HeaderLocked(),
		Lines:        make([]dto.CartLineResponse, 0, len(lines)),
		ItemCount:    len(lines),
		Total:        c.Total(),
		UpdatedAt:    d.UpdatedAt,
	}
	if h, ok := f.Header(); ok {
		out.Header = &dto.DraftHeaderResponse{
			ClientID:            h.ClientID,
			ClientName:          h.ClientName,
			NegotiationTypeID:   h.NegotiationTypeID,
			NegotiationTypeName: h.NegotiationTypeName,
		}
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.CartLineResponse{
			ProductID:   l.ProductID,
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
			Stock:       l.Stock,
			AtCeiling:   l.AtCeiling(),
		})
	}
	if s := f.Sale(); s != nil {
		r := ToSaleResponse(s)
		out.Sale = &r
	}
	return out
}
