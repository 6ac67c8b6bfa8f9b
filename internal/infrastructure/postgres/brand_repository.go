package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una marca nueva.
func (r *BrandRepo) Create(brand *entity.Brand) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO brands (name) VALUES ($1) RETURNING id`, brand.Name).
		Scan(&brand.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID; nil si no existe.
func (r *BrandRepo) GetByID(id int64) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM brands WHERE id = $1`, id).Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// Update renombra la marca.
func (r *BrandRepo) Update(brand *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE brands SET name = $2 WHERE id = $1`, brand.ID, brand.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

// List devuelve todas las marcas ordenadas por ID.
func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM brands ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina por ID.
func (r *BrandRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
