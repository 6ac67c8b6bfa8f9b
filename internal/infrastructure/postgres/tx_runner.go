package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.SaleTxRunner.
var _ sales.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Conflictos de concurrencia (serialization failure,
// deadlock) se traducen a domain.ErrTxConflict para que el caller pueda
// reintentar o responder 409.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	movRepo := NewStockMovementRepository(tx)

	if err := fn(productRepo, saleRepo, movRepo); err != nil {
		if isTxConflict(err) {
			return fmt.Errorf("%w: %v", domain.ErrTxConflict, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isTxConflict(err) {
			return fmt.Errorf("%w: %v", domain.ErrTxConflict, err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
