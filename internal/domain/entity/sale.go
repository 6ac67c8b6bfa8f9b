package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Total es derivado (suma exacta de
// precio × cantidad de sus líneas); nunca lo suministra el caller. Se crea una
// sola vez por transacción exitosa y no se actualiza después.
type Sale struct {
	ID          int64
	Total       decimal.Decimal
	CreatedAt   time.Time
	CustomerDNI int64
}
