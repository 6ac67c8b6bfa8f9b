package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// Round-trip: crear una venta y leerla reconstruye cliente, líneas y total.
func TestReadSale_RoundTrip(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	store.addProduct(2, "Mouse", 10, "2.00")
	createUC, _, customers := newSaleFixture(store)

	created, err := createUC.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products: []dto.SaleItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	readUC := sales.NewReadSaleUseCase(&fakeSaleRepo{store: store}, customers)
	view, err := readUC.GetSale(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, view.ID)
	assert.True(t, created.Total.Equal(view.Total))
	assert.Equal(t, int64(12345678), view.Customer.DNI)
	assert.Equal(t, "María", view.Customer.Name)
	assert.Equal(t, "Quispe", view.Customer.LastName)

	require.Len(t, view.Products, 2)
	assert.Equal(t, "Teclado", view.Products[0].Name)
	assert.Equal(t, int64(2), view.Products[0].Quantity)
	assert.Equal(t, "Mouse", view.Products[1].Name)
	assert.Equal(t, int64(1), view.Products[1].Quantity)
}

// Las líneas muestran el precio vigente del catálogo, no el del momento de la venta.
func TestReadSale_PrecioVigenteDelCatalogo(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	createUC, _, customers := newSaleFixture(store)

	created, err := createUC.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
		CustomerDNI: 12345678,
		Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// Cambio de precio posterior a la venta.
	store.addProduct(1, "Teclado", 9, "7.50")

	readUC := sales.NewReadSaleUseCase(&fakeSaleRepo{store: store}, customers)
	view, err := readUC.GetSale(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "7.5", view.Products[0].Price.String(),
		"la línea refleja el precio actual del catálogo")
	assert.Equal(t, "5", view.Total.String(),
		"el total de la cabecera conserva el importe cobrado")
}

// Venta inexistente.
func TestReadSale_VentaNoExiste(t *testing.T) {
	store := newMemStore()
	_, _, customers := newSaleFixture(store)

	readUC := sales.NewReadSaleUseCase(&fakeSaleRepo{store: store}, customers)
	_, err := readUC.GetSale(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

// Listado de cabeceras.
func TestReadSale_ListSales(t *testing.T) {
	store := newMemStore()
	store.addProduct(1, "Teclado", 10, "5.00")
	createUC, _, customers := newSaleFixture(store)

	for i := 0; i < 3; i++ {
		_, err := createUC.CreateSale(context.Background(), "cajero1", dto.CreateSaleRequest{
			CustomerDNI: 12345678,
			Products:    []dto.SaleItemInput{{ProductID: 1, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	readUC := sales.NewReadSaleUseCase(&fakeSaleRepo{store: store}, customers)
	list, err := readUC.ListSales(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
