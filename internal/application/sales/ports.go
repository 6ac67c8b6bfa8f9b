package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ventas:
// o se confirman todos los decrementos de stock, la cabecera y las líneas, o
// ninguno. Errores de lock/serialización del gateway llegan como
// domain.ErrTxConflict; el caller decide si reintenta.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// ReceiptGenerator genera el ticket PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *dto.SaleReadResponse) ([]byte, error)
}
