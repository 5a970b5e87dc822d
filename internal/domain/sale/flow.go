package sale

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/cart"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// Step paso del flujo de nueva venta.
type Step string

// Pasos del flujo.
const (
	StepHeader   Step = "HEADER"
	StepProducts Step = "PRODUCTS"
	StepCheckout Step = "CHECKOUT"
	StepDone     Step = "DONE"
)

// Persister guarda la venta en el almacén de entidades.
type Persister func(ctx context.Context, s *entity.Sale) error

// Flow instancia del flujo de nueva venta. No es segura para uso concurrente;
// quien la guarde debe serializar el acceso.
//
// Transiciones:
//
//	HEADER   --ConfirmHeader-->     PRODUCTS (la cabecera queda bloqueada)
//	PRODUCTS --BackToHeader-->      HEADER   (sólo antes del primer checkout; ResumeProducts vuelve)
//	PRODUCTS --ProceedToCheckout--> CHECKOUT (carrito no vacío)
//	CHECKOUT --BackToProducts-->    PRODUCTS
//	CHECKOUT --Submit-->            DONE     (sólo si el almacén confirma)
//	DONE     --Restart-->           nueva instancia en HEADER
type Flow struct {
	step   Step
	header *Header
	cart   cart.Cart
	sale   *entity.Sale

	checkoutEntered bool // la cabecera queda fija una vez alcanzado CHECKOUT
}

// NewFlow inicia un flujo en HEADER con carrito vacío.
func NewFlow() *Flow {
	return &Flow{step: StepHeader}
}

// Step paso actual.
func (f *Flow) Step() Step { return f.step }

// Header cabecera confirmada, si existe.
func (f *Flow) Header() (Header, bool) {
	if f.header == nil {
		return Header{}, false
	}
	return *f.header, true
}

// HeaderLocked indica si la cabecera ya fue confirmada.
func (f *Flow) HeaderLocked() bool { return f.header != nil }

// Cart estado actual del carrito.
func (f *Flow) Cart() cart.Cart { return f.cart }

// Sale venta persistida; nil hasta llegar a DONE.
func (f *Flow) Sale() *entity.Sale { return f.sale }

func (f *Flow) expect(step Step, action string) error {
	if f.step != step {
		return domain.NewValidationError(fmt.Sprintf("%s no permitido en el paso %s", action, f.step))
	}
	return nil
}

// ConfirmHeader valida y bloquea la cabecera, y pasa a PRODUCTS.
func (f *Flow) ConfirmHeader(h Header) error {
	if err := f.expect(StepHeader, "confirmar cabecera"); err != nil {
		return err
	}
	if f.header != nil {
		return domain.NewValidationError("la cabecera ya fue confirmada; reinicie la venta para cambiarla")
	}
	if err := h.Validate(); err != nil {
		return err
	}
	f.header = &h
	f.step = StepProducts
	return nil
}

// BackToHeader vuelve a HEADER antes del checkout. La cabecera sigue bloqueada.
func (f *Flow) BackToHeader() error {
	if err := f.expect(StepProducts, "volver a la cabecera"); err != nil {
		return err
	}
	if f.checkoutEntered {
		return domain.NewValidationError("la cabecera no se edita después del checkout")
	}
	f.step = StepHeader
	return nil
}

// ResumeProducts regresa a PRODUCTS desde HEADER cuando la cabecera ya está confirmada.
func (f *Flow) ResumeProducts() error {
	if err := f.expect(StepHeader, "continuar a productos"); err != nil {
		return err
	}
	if f.header == nil {
		return domain.NewValidationError("cabecera no confirmada")
	}
	f.step = StepProducts
	return nil
}

// AddProduct agrega una unidad del producto al carrito.
func (f *Flow) AddProduct(p entity.Product) error {
	if err := f.expect(StepProducts, "agregar producto"); err != nil {
		return err
	}
	f.cart = f.cart.AddProduct(p)
	return nil
}

// SetQuantity fija la cantidad de una línea (<= 0 la elimina).
func (f *Flow) SetQuantity(productID string, quantity int) error {
	if err := f.expect(StepProducts, "cambiar cantidad"); err != nil {
		return err
	}
	f.cart = f.cart.SetQuantity(productID, quantity)
	return nil
}

// RemoveLine elimina una línea del carrito.
func (f *Flow) RemoveLine(productID string) error {
	if err := f.expect(StepProducts, "quitar producto"); err != nil {
		return err
	}
	f.cart = f.cart.RemoveLine(productID)
	return nil
}

// ProceedToCheckout pasa a CHECKOUT si el carrito tiene al menos una línea.
func (f *Flow) ProceedToCheckout() error {
	if err := f.expect(StepProducts, "ir al checkout"); err != nil {
		return err
	}
	if f.cart.IsEmpty() {
		return domain.NewValidationError("agregue al menos un producto al carrito")
	}
	f.checkoutEntered = true
	f.step = StepCheckout
	return nil
}

// BackToProducts vuelve a editar el carrito desde CHECKOUT.
func (f *Flow) BackToProducts() error {
	if err := f.expect(StepCheckout, "volver a productos"); err != nil {
		return err
	}
	f.step = StepProducts
	return nil
}

// Submit arma la venta y la persiste. Si el almacén falla devuelve *domain.RemoteError
// y el flujo queda en CHECKOUT sin cambios, listo para reintentar.
func (f *Flow) Submit(ctx context.Context, asm *Assembler, seller *entity.User, persist Persister) (*entity.Sale, error) {
	if err := f.expect(StepCheckout, "finalizar venta"); err != nil {
		return nil, err
	}
	s, err := asm.BuildSale(f.header, f.cart, seller)
	if err != nil {
		return nil, err
	}
	if err := persist(ctx, s); err != nil {
		if domain.IsRemote(err) {
			return nil, err
		}
		return nil, &domain.RemoteError{Op: "crear venta", Err: err}
	}
	f.sale = s
	f.step = StepDone
	return s, nil
}

// Restart devuelve una instancia nueva e independiente una vez terminada la venta.
func (f *Flow) Restart() (*Flow, error) {
	if err := f.expect(StepDone, "reiniciar"); err != nil {
		return nil, err
	}
	return NewFlow(), nil
}
