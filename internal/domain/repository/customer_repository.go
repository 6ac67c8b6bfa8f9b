package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByDNI(dni int64) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
}
