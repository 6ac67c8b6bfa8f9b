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

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

const providerColumns = `id, ruc, name, address, phone, email`

// Create persiste un proveedor nuevo; RUC y nombre son únicos.
func (r *ProviderRepo) Create(provider *entity.Provider) error {
	query := `
		INSERT INTO providers (ruc, name, address, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		provider.RUC, provider.Name, provider.Address, provider.Phone, provider.Email,
	).Scan(&provider.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; nil si no existe.
func (r *ProviderRepo) GetByID(id int64) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&p.ID, &p.RUC, &p.Name, &p.Address, &p.Phone, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// GetByName obtiene un proveedor por nombre; nil si no existe.
func (r *ProviderRepo) GetByName(name string) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE name = $1`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, name).
		Scan(&p.ID, &p.RUC, &p.Name, &p.Address, &p.Phone, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider by name: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos del proveedor.
func (r *ProviderRepo) Update(provider *entity.Provider) error {
	query := `
		UPDATE providers SET ruc = $2, name = $3, address = $4, phone = $5, email = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		provider.ID, provider.RUC, provider.Name, provider.Address, provider.Phone, provider.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// List devuelve todos los proveedores ordenados por ID.
func (r *ProviderRepo) List() ([]*entity.Provider, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+providerColumns+` FROM providers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.RUC, &p.Name, &p.Address, &p.Phone, &p.Email); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina por ID.
func (r *ProviderRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}

// DeleteByName elimina por nombre.
func (r *ProviderRepo) DeleteByName(name string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM providers WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete provider by name: %w", err)
	}
	return nil
}
