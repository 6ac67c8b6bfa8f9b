package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo.
// Stock vive en la misma fila y solo lo muta el motor de ventas (bajo FOR UPDATE)
// o la actualización directa del producto. Invariantes: stock >= 0, price >= 0.
type Product struct {
	ID          int64
	Name        string
	Description string
	Stock       int64
	Price       decimal.Decimal // precio de venta unitario
	CategoryID  int64
	BrandID     int64
	ProviderID  int64
	CreatedAt   time.Time
}
