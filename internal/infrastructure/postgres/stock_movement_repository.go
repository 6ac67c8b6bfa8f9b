package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo ledger de movimientos de stock sobre PostgreSQL. Solo
// inserta y consulta: los movimientos nunca se actualizan ni se borran.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del ledger de stock.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento (cantidad negativa en ventas).
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (transaction_id, sale_id, product_id, quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		mov.TransactionID, mov.SaleID, mov.ProductID, mov.Quantity, mov.CreatedBy, mov.CreatedAt,
	).Scan(&mov.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListBySaleID devuelve los movimientos generados por una venta.
func (r *StockMovementRepo) ListBySaleID(saleID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, sale_id, product_id, quantity, created_by, created_at
		FROM stock_movements WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.SaleID, &m.ProductID,
			&m.Quantity, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
