package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	// Create persiste la cabecera y asigna ID y CreatedAt del servidor.
	Create(sale *entity.Sale) error
	// CreateItem persiste una línea; entradas repetidas del mismo producto en
	// la misma venta consolidan la cantidad sobre la fila existente.
	CreateItem(item *entity.SaleItem) error
	GetByID(id int64) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	// GetLinesBySaleID hace el join sale_items × products y devuelve las
	// líneas con nombre y precio vigentes del catálogo.
	GetLinesBySaleID(saleID int64) ([]*entity.SaleLine, error)
}
