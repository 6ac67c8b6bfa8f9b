package entity

import "time"

// StockMovement es el registro de auditoría de cada mutación de stock.
// El motor de ventas escribe una fila con cantidad negativa por cada línea,
// todas con el mismo TransactionID de la venta.
type StockMovement struct {
	ID            int64
	TransactionID string // UUID compartido por todos los movimientos de una venta
	SaleID        int64
	ProductID     int64
	Quantity      int64 // negativa en salidas por venta
	CreatedBy     string
	CreatedAt     time.Time
}
