package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// Venta simple: total exacto y stock decrementado en un solo paso.
func TestCreateSale_TotalExactoYDecremento(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	uc, _, _ := newSaleFixture(store)

	out, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "15", out.Total.String(), "3 × 5.00 debe dar exactamente 15")
	assert.Equal(t, int64(12345678), out.CustomerDNI)
	assert.NotZero(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())

	assert.Equal(t, int64(7), store.products[1].Stock, "stock debe quedar en 10-3=7")
	require.Len(t, store.items, 1)
	assert.Equal(t, int64(3), store.items[0].Quantity)
}

// Cantidad omitida o cero se interpreta como 1.
func TestCreateSale_CantidadPorDefectoEsUno(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Mouse", 5, "2.50")
	uc, _, _ := newSaleFixture(store)

	out, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products:    []dto.SaleItemInput{{ProductID: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2.5", out.Total.String())
	assert.Equal(t, int64(4), store.products[1].Stock)
}

// Cantidad negativa es inválida.
func TestCreateSale_CantidadNegativa(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Mouse", 5, "2.50")
	uc, _, _ := newSaleFixture(store)

	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: -2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(5), store.products[1].Stock, "no debe quedar decremento visible")
}

// Orden vacía se rechaza antes de cualquier lookup.
func TestCreateSale_OrdenVacia(t *testing.T) {
	store := newMemStore()
	uc, _, _ := newSaleFixture(store)

	// DNI inexistente a propósito: el chequeo de orden vacía va primero.
	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 99999999,
		Products:    nil,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

// Cliente inexistente.
func TestCreateSale_ClienteNoExiste(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	uc, _, _ := newSaleFixture(store)

	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 99999999,
		Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Empty(t, store.sales)
}

// Producto inexistente: el error identifica cuál.
func TestCreateSale_ProductoNoExiste(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	uc, _, _ := newSaleFixture(store)

	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products: []dto.SaleItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 42, Quantity: 1},
		},
	})
	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ProductID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Equal(t, int64(10), store.products[1].Stock,
		"el decremento de la primera línea debe revertirse")
	assert.Empty(t, store.sales)
}

// Stock insuficiente: el error detalla pedido y disponible.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 2, "5.00")
	uc, _, _ := newSaleFixture(store)

	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: 3}},
	})
	var noStock *domain.InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, int64(1), noStock.ProductID)
	assert.Equal(t, int64(3), noStock.Requested)
	assert.Equal(t, int64(2), noStock.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(2), store.products[1].Stock)
	assert.Empty(t, store.sales)
}

// Entradas repetidas del mismo producto: chequeo secuencial contra el valor en
// curso. Con stock 4 y líneas (2, 3), la segunda falla viendo disponible 2.
func TestCreateSale_ProductoRepetido_ChequeoSecuencial(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 4, "5.00")
	uc, _, _ := newSaleFixture(store)

	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products: []dto.SaleItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 1, Quantity: 3},
		},
	})
	var noStock *domain.InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, int64(3), noStock.Requested)
	assert.Equal(t, int64(2), noStock.Available,
		"la segunda línea debe ver el stock ya decrementado por la primera")

	assert.Equal(t, int64(4), store.products[1].Stock, "rollback completo")
}

// Entradas repetidas que sí caben: una sola fila consolidada y total correcto.
func TestCreateSale_ProductoRepetido_Consolida(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	uc, _, _ := newSaleFixture(store)

	out, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products: []dto.SaleItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 1, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "25", out.Total.String())
	assert.Equal(t, int64(5), store.products[1].Stock)
	require.Len(t, store.items, 1, "las líneas repetidas deben consolidarse")
	assert.Equal(t, int64(5), store.items[0].Quantity)
}

// Varias líneas: total con aritmética decimal exacta.
func TestCreateSale_VariasLineas_TotalDecimal(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "19.99")
	store.addProduct(2, "Mouse", 10, "0.10")
	uc, _, _ := newSaleFixture(store)

	out, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products: []dto.SaleItemInput{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)
	// 3×19.99 + 3×0.10 = 60.27 exacto, sin deriva binaria.
	assert.Equal(t, "60.27", out.Total.String())
}

// Fallo inyectado al persistir movimientos: nada queda visible.
func TestCreateSale_FalloEnMovimiento_Atomicidad(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	uc, runner, _ := newSaleFixture(store)
	runner.movErr = errors.New("disco lleno")

	_, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: 3}},
	})
	require.Error(t, err)

	assert.Equal(t, int64(10), store.products[1].Stock, "el stock no debe cambiar")
	assert.Empty(t, store.sales, "no debe quedar cabecera")
	assert.Empty(t, store.items, "no deben quedar líneas")
	assert.Empty(t, store.movements, "no deben quedar movimientos")
}

// Los movimientos de auditoría comparten transaction_id y llevan cantidad negativa.
func TestCreateSale_MovimientosDeAuditoria(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	store.addProduct(2, "Mouse", 10, "2.00")
	uc, _, _ := newSaleFixture(store)

	out, err := uc.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products: []dto.SaleItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, store.movements, 2)
	assert.Equal(t, store.movements[0].TransactionID, store.movements[1].TransactionID)
	// La columna es UUID: el ID de transacción debe ser un UUID válido.
	_, err = uuid.Parse(store.movements[0].TransactionID)
	assert.NoError(t, err)
	assert.Equal(t, int64(-2), store.movements[0].Quantity)
	assert.Equal(t, int64(-1), store.movements[1].Quantity)
	assert.Equal(t, "cajero1", store.movements[0].CreatedBy)
	assert.Equal(t, out.ID, store.movements[0].SaleID)
}
