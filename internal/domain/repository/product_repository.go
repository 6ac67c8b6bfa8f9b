package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción: bloquea la fila
// (SELECT FOR UPDATE) hasta el commit/rollback para serializar el decremento
// de stock entre ventas concurrentes.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id, stock int64) error
	List() ([]*entity.Product, error)
	Delete(id int64) error
}
