package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

var saleTable = table{
	name: "sales",
	columns: "id, number, seller_id, seller_name, client_id, client_name, negotiation_type_id, negotiation_type_name, " +
		"status, total, created_at",
	sortable: map[string]string{
		"number":      "number",
		"total":       "total",
		"client_name": "client_name",
		"seller_name": "seller_name",
	},
	filterable: map[string]string{
		"id":                  "id",
		"number":              "number",
		"seller_id":           "seller_id",
		"client_id":           "client_id",
		"negotiation_type_id": "negotiation_type_id",
		"status":              "status",
	},
	searchable:  []string{"number", "client_name", "seller_name"},
	defaultSort: "created_at DESC, id",
}

// SaleRepo ventas (cabecera + ítems) sobre PostgreSQL. Create debe correr dentro de
// una transacción (ver TxRunner.RunSale) para que cabecera e ítems se guarden juntos.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y luego cada ítem en orden.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, number, seller_id, seller_name, client_id, client_name, negotiation_type_id,
		                   negotiation_type_name, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.Number, s.SellerID, s.SellerName, s.ClientID, s.ClientName, s.NegotiationTypeID,
		s.NegotiationTypeName, s.Status, s.Total, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, position, product_id, product_code, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, i, it.ProductID, it.ProductCode, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus ítems.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if !isUUID(id) {
		return nil, nil
	}
	s, err := scanSale(r.q.QueryRow(ctx, "SELECT "+saleTable.columns+" FROM sales WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Sale{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// List lista ventas con sus ítems.
func (r *SaleRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Sale, error) {
	return r.Filter(ctx, nil, opts)
}

// Filter lista ventas que cumplen la igualdad de fields, con sus ítems.
func (r *SaleRepo) Filter(ctx context.Context, fields repository.Fields, opts repository.ListOptions) ([]*entity.Sale, error) {
	query, args, err := saleTable.selectSQL(fields, opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems completa Items de todas las ventas con una sola consulta.
func (r *SaleRepo) loadItems(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Sale, len(sales))
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT sale_id, product_id, product_code, product_name, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = ANY($1::uuid[]) ORDER BY sale_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			saleID string
			it     entity.SaleItem
		)
		if err := rows.Scan(&saleID, &it.ProductID, &it.ProductCode, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Items = append(s.Items, it)
		}
	}
	return rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.Number, &s.SellerID, &s.SellerName, &s.ClientID, &s.ClientName,
		&s.NegotiationTypeID, &s.NegotiationTypeName, &s.Status, &s.Total, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
