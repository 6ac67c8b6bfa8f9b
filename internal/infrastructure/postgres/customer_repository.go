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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo; el DNI es único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (dni, name, last_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.DNI, customer.Name, customer.LastName, customer.Email,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return r.scanOne(`SELECT id, dni, name, last_name, email FROM customers WHERE id = $1`, id)
}

// GetByDNI obtiene un cliente por DNI; nil si no existe.
func (r *CustomerRepo) GetByDNI(dni int64) (*entity.Customer, error) {
	return r.scanOne(`SELECT id, dni, name, last_name, email FROM customers WHERE dni = $1`, dni)
}

func (r *CustomerRepo) scanOne(query string, arg int64) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).
		Scan(&c.ID, &c.DNI, &c.Name, &c.LastName, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por ID.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, dni, name, last_name, email FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.DNI, &c.Name, &c.LastName, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
