package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrEmptyOrder        = errors.New("la venta no tiene productos")
	ErrCustomerNotFound  = errors.New("cliente no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrTxConflict        = errors.New("conflicto de transacción, reintentar")
)

// ProductNotFoundError identifica qué producto de la orden no existe.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %d no encontrado", e.ProductID)
}

// Unwrap permite errors.Is(err, ErrProductNotFound).
func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InsufficientStockError detalla producto, cantidad pedida y disponible al momento del chequeo.
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %d: pedido %d, disponible %d",
		e.ProductID, e.Requested, e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
