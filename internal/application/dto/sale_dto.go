package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemInput línea de la orden: producto y cantidad.
// Quantity omitida o cero se interpreta como 1.
type SaleItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CreateSaleRequest body para POST /sales.
type CreateSaleRequest struct {
	CustomerDNI int64           `json:"customer_dni"`
	Products    []SaleItemInput `json:"products"`
}

// SaleResponse cabecera de la venta (respuesta de creación y de listado).
type SaleResponse struct {
	ID          int64           `json:"id"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	CustomerDNI int64           `json:"customer_dni"`
}

// CustomerSnapshot cliente embebido en la vista de una venta.
type CustomerSnapshot struct {
	DNI      int64  `json:"dni"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

// SaleLineResponse línea expandida: nombre y precio vigentes del producto.
type SaleLineResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// SaleReadResponse vista completa para GET /sales/:id.
type SaleReadResponse struct {
	ID        int64              `json:"id"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Customer  CustomerSnapshot   `json:"customer"`
	Products  []SaleLineResponse `json:"products"`
}
