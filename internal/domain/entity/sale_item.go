package entity

import "github.com/shopspring/decimal"

// SaleItem asocia una venta con un producto vendido.
// Identidad compuesta (ProductID, SaleID); se persiste solo dentro de la
// transacción de creación de la venta, junto con la cabecera.
type SaleItem struct {
	ProductID int64
	SaleID    int64
	Quantity  int64
}

// SaleLine es una línea de venta expandida para lectura: nombre y precio
// vigentes del producto más la cantidad vendida.
type SaleLine struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int64
}
