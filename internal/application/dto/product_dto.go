package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int64           `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	BrandID     int64           `json:"brand_id"`
	ProviderID  int64           `json:"provider_id"`
}

// UpdateProductRequest entrada para actualizar un producto; campos nil no se tocan.
// Stock aquí es un ajuste administrativo directo, fuera del motor de ventas.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Stock       *int64           `json:"stock"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"category_id"`
	BrandID     *int64           `json:"brand_id"`
	ProviderID  *int64           `json:"provider_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int64           `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	BrandID     int64           `json:"brand_id"`
	ProviderID  int64           `json:"provider_id"`
	CreatedAt   time.Time       `json:"created_at"`
}
