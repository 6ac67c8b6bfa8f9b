package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta; el servidor asigna ID y CreatedAt.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (total, customer_dni)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, sale.Total, sale.CustomerDNI).
		Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta. La PK es (product_id, sale_id);
// si la misma venta repite un producto, la cantidad se consolida sobre la
// fila existente en lugar de fallar.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (product_id, sale_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, sale_id)
		DO UPDATE SET quantity = sale_items.quantity + EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query, item.ProductID, item.SaleID, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta; nil si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT id, total, created_at, customer_dni FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&s.ID, &s.Total, &s.CreatedAt, &s.CustomerDNI)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devuelve todas las ventas ordenadas por ID.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `SELECT id, total, created_at, customer_dni FROM sales ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Total, &s.CreatedAt, &s.CustomerDNI); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetLinesBySaleID hace el join sale_items × products: nombre y precio salen
// del catálogo vigente, no de un snapshot al momento de la venta.
func (r *SaleRepo) GetLinesBySaleID(saleID int64) ([]*entity.SaleLine, error) {
	query := `
		SELECT si.product_id, p.name, p.price, si.quantity
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY si.product_id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Price, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}
