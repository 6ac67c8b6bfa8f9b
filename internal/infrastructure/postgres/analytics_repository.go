package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard. Siempre va
// contra el pool: no participa en transacciones de venta.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analytics.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics cuenta ventas y suma ingresos en el rango [start, end].
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (*repository.SalesMetrics, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales
		WHERE created_at BETWEEN $1 AND $2`
	var m repository.SalesMetrics
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&m.SaleCount, &m.Revenue); err != nil {
		return nil, fmt.Errorf("sales metrics: %w", err)
	}
	return &m, nil
}

// GetTopProducts devuelve los productos más vendidos del rango, por unidades.
// El ingreso usa el precio vigente del catálogo.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT si.product_id, p.name, SUM(si.quantity) AS units, SUM(si.quantity * p.price) AS revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.created_at BETWEEN $1 AND $2
		GROUP BY si.product_id, p.name
		ORDER BY units DESC, si.product_id
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var p repository.TopProduct
		var revenue decimal.Decimal
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Units, &revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		p.Revenue = revenue
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetLowStock devuelve los productos con stock en o por debajo del umbral.
func (r *AnalyticsRepo) GetLowStock(ctx context.Context, threshold int64) ([]repository.LowStockProduct, error) {
	query := `
		SELECT id, name, stock
		FROM products
		WHERE stock <= $1
		ORDER BY stock, id`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockProduct
	for rows.Next() {
		var p repository.LowStockProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
