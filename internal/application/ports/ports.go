// Package ports define los puertos de salida de la capa de aplicación.
// Cada adaptador (S3, disco, Maroto, memoria) implementa uno de estos contratos;
// los casos de uso sólo conocen la interfaz.
package ports

import (
	"context"
	"time"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// FileStorage sube un archivo y devuelve la URL pública con la que se referencia.
type FileStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	SaleReceipt(ctx context.Context, sale *entity.Sale) ([]byte, error)
}

// TokenRevoker lista de tokens revocados (logout) hasta su expiración natural.
type TokenRevoker interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
}

// SaleTxRunner persiste una venta (cabecera e ítems) en una sola transacción.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(sales repository.SaleRepository) error) error
}
