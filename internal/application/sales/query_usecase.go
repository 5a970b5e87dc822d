package sales

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/ports"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/money"
)

const (
	defaultSort  = "-created_date"
	defaultLimit = 100
)

var csvHeader = []string{"Número", "Data", "Cliente", "Vendedor", "Tipo", "Itens", "Total"}

// QueryUseCase consulta y exportación de ventas registradas.
type QueryUseCase struct {
	repo     repository.SaleRepository
	receipts ports.ReceiptGenerator
	now      func() time.Time
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.SaleRepository, receipts ports.ReceiptGenerator) *QueryUseCase {
	return &QueryUseCase{repo: repo, receipts: receipts, now: time.Now}
}

// List ventas, las más recientes primero salvo que q.Sort indique otro orden.
// Search busca en número, cliente y vendedor.
func (uc *QueryUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.SaleListResponse, error) {
	opts := listOptions(q)
	list, err := uc.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: opts.Limit, Offset: opts.Offset},
	}, nil
}

// Get venta con sus ítems.
func (uc *QueryUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToSaleResponse(s)
	return &out, nil
}

// ExportCSV exporta el listado (mismos filtros que List) y devuelve el contenido y el
// nombre de archivo vendas_YYYYMMDD.csv.
func (uc *QueryUseCase) ExportCSV(ctx context.Context, q dto.ListQuery) ([]byte, string, error) {
	opts := listOptions(q)
	if q.Limit == 0 {
		opts.Limit = 0
	}
	list, err := uc.repo.List(ctx, opts)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, "", err
	}
	for _, s := range list {
		row := []string{
			s.Number,
			s.CreatedAt.Format("02/01/2006 15:04"),
			s.ClientName,
			s.SellerName,
			s.NegotiationTypeName,
			strconv.Itoa(itemCount(s)),
			money.Format(s.Total),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	name := "vendas_" + uc.now().Format("20060102") + ".csv"
	return buf.Bytes(), name, nil
}

// ReceiptPDF comprobante PDF de la venta y su nombre de archivo.
func (uc *QueryUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, string, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.receipts.SaleReceipt(ctx, s)
	if err != nil {
		return nil, "", err
	}
	return pdf, s.Number + ".pdf", nil
}

func (uc *QueryUseCase) get(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func listOptions(q dto.ListQuery) repository.ListOptions {
	q.DefaultPage(defaultLimit)
	sort := q.Sort
	if sort == "" {
		sort = defaultSort
	}
	return repository.ListOptions{Sort: sort, Limit: q.Limit, Offset: q.Offset, Search: q.Search}
}

// itemCount número de líneas de la venta, no de unidades.
func itemCount(s *entity.Sale) int {
	return len(s.Items)
}

// ToSaleResponse mapea la venta al DTO de salida.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return dto.SaleResponse{
		ID:                  s.ID,
		Number:              s.Number,
		SellerID:            s.SellerID,
		SellerName:          s.SellerName,
		ClientID:            s.ClientID,
		ClientName:          s.ClientName,
		NegotiationTypeID:   s.NegotiationTypeID,
		NegotiationTypeName: s.NegotiationTypeName,
		Status:              s.Status,
		Total:               s.Total,
		ItemCount:           itemCount(s),
		Items:               items,
		CreatedAt:           s.CreatedAt,
	}
}
