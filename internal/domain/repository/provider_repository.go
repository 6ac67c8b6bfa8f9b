package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProviderRepository define el puerto de persistencia para Provider (DIP).
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id int64) (*entity.Provider, error)
	GetByName(name string) (*entity.Provider, error)
	Update(provider *entity.Provider) error
	List() ([]*entity.Provider, error)
	Delete(id int64) error
	DeleteByName(name string) error
}
