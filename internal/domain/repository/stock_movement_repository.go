package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// StockMovementRepository define el puerto del ledger de auditoría de stock.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListBySaleID(saleID int64) ([]*entity.StockMovement, error)
}
