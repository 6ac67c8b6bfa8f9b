package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics agrega ventas e ingresos de un rango de fechas.
type SalesMetrics struct {
	SaleCount int64
	Revenue   decimal.Decimal
}

// TopProduct unidades e ingresos de un producto en un rango de fechas.
type TopProduct struct {
	ProductID int64
	Name      string
	Units     int64
	Revenue   decimal.Decimal
}

// LowStockProduct producto con stock en o por debajo del umbral.
type LowStockProduct struct {
	ProductID int64
	Name      string
	Stock     int64
}

// AnalyticsRepository consultas read-only para el dashboard. No participa en
// transacciones de escritura.
type AnalyticsRepository interface {
	GetSalesMetrics(ctx context.Context, start, end time.Time) (*SalesMetrics, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProduct, error)
	GetLowStock(ctx context.Context, threshold int64) ([]LowStockProduct, error)
}
