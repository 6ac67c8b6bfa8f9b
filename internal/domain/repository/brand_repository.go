package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id int64) (*entity.Brand, error)
	Update(brand *entity.Brand) error
	List() ([]*entity.Brand, error)
	Delete(id int64) error
}
