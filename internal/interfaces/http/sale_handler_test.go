package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar el handler de ventas completo
// ──────────────────────────────────────────────────────────────────────────────

type saleStore struct {
	products map[int64]*entity.Product
	sales    []*entity.Sale
	items    []*entity.SaleItem
	movs     []*entity.StockMovement
	nextSale int64
}

type storeProductRepo struct{ s *saleStore }

func (r *storeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *storeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}
func (r *storeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }
func (r *storeProductRepo) Update(p *entity.Product) error                 { return nil }
func (r *storeProductRepo) UpdateStock(id, stock int64) error {
	if p, ok := r.s.products[id]; ok {
		p.Stock = stock
	}
	return nil
}
func (r *storeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (r *storeProductRepo) Delete(id int64) error            { return nil }

type storeSaleRepo struct{ s *saleStore }

func (r *storeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.s.nextSale
	r.s.nextSale++
	sale.CreatedAt = time.Now()
	clone := *sale
	r.s.sales = append(r.s.sales, &clone)
	return nil
}
func (r *storeSaleRepo) CreateItem(item *entity.SaleItem) error {
	clone := *item
	r.s.items = append(r.s.items, &clone)
	return nil
}
func (r *storeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	for _, s := range r.s.sales {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}
func (r *storeSaleRepo) List() ([]*entity.Sale, error) { return r.s.sales, nil }
func (r *storeSaleRepo) GetLinesBySaleID(saleID int64) ([]*entity.SaleLine, error) {
	var lines []*entity.SaleLine
	for _, item := range r.s.items {
		if item.SaleID != saleID {
			continue
		}
		p := r.s.products[item.ProductID]
		lines = append(lines, &entity.SaleLine{
			ProductID: item.ProductID, Name: p.Name, Price: p.Price, Quantity: item.Quantity,
		})
	}
	return lines, nil
}

type storeMovRepo struct{ s *saleStore }

func (r *storeMovRepo) Create(m *entity.StockMovement) error {
	clone := *m
	r.s.movs = append(r.s.movs, &clone)
	return nil
}
func (r *storeMovRepo) ListBySaleID(saleID int64) ([]*entity.StockMovement, error) {
	return nil, nil
}

type storeCustomerRepo struct{ byDNI map[int64]*entity.Customer }

func (r *storeCustomerRepo) Create(c *entity.Customer) error { r.byDNI[c.DNI] = c; return nil }
func (r *storeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, c := range r.byDNI {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *storeCustomerRepo) GetByDNI(dni int64) (*entity.Customer, error) {
	return r.byDNI[dni], nil
}
func (r *storeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.byDNI))
	for _, c := range r.byDNI {
		out = append(out, c)
	}
	return out, nil
}

// stubTxRunner ejecuta el callback sobre el store; con forcedErr simula un
// fallo del gateway (p.ej. conflicto de serialización ya traducido).
type stubTxRunner struct {
	s         *saleStore
	forcedErr error
}

func (r *stubTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}
	return fn(&storeProductRepo{s: r.s}, &storeSaleRepo{s: r.s}, &storeMovRepo{s: r.s})
}

// buildSalesApp monta las rutas de ventas con fakes: un cliente (DNI 12345678)
// y un producto (ID 1, stock 2, precio 5.00).
func buildSalesApp(forcedErr error) *fiber.App {
	store := &saleStore{products: make(map[int64]*entity.Product), nextSale: 1}
	store.products[1] = &entity.Product{
		ID: 1, Name: "Teclado", Stock: 2, Price: decimal.RequireFromString("5.00"),
	}
	customers := &storeCustomerRepo{byDNI: map[int64]*entity.Customer{
		12345678: {ID: 1, DNI: 12345678, Name: "María", LastName: "Quispe"},
	}}
	runner := &stubTxRunner{s: store, forcedErr: forcedErr}

	createUC := sales.NewCreateSaleUseCase(runner, customers)
	readUC := sales.NewReadSaleUseCase(&storeSaleRepo{s: store}, customers)
	handler := apphttp.NewSaleHandler(createUC, readUC, nil)

	app := fiber.New()
	app.Post("/sales", handler.Create)
	app.Get("/sales", handler.List)
	app.Get("/sales/:id", handler.GetByID)
	return app
}

func postSale(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) (code, message string) {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["code"], body["message"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores del handler de ventas
// ──────────────────────────────────────────────────────────────────────────────

// Venta válida → 200 con cabecera (no 201).
func TestSaleHandler_Crear_Responde200(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[{"product_id":1,"quantity":2}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "10", fmt.Sprint(body["total"]))
	assert.Equal(t, float64(12345678), body["customer_dni"])
}

// Orden vacía → 400 EMPTY_ORDER.
func TestSaleHandler_OrdenVacia_400(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "EMPTY_ORDER", code)
}

// Cantidad negativa → 400 VALIDATION.
func TestSaleHandler_CantidadNegativa_400(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[{"product_id":1,"quantity":-1}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", code)
}

// Cliente inexistente → 404 CUSTOMER_NOT_FOUND.
func TestSaleHandler_ClienteNoExiste_404(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":99999999,"products":[{"product_id":1}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", code)
}

// Producto inexistente → 404 PRODUCT_NOT_FOUND identificando el ID.
func TestSaleHandler_ProductoNoExiste_404(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[{"product_id":42}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	code, message := decodeError(t, resp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", code)
	assert.Contains(t, message, "42")
}

// Stock insuficiente → 409 INSUFFICIENT_STOCK con pedido y disponible.
func TestSaleHandler_StockInsuficiente_409(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[{"product_id":1,"quantity":3}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	code, message := decodeError(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", code)
	assert.Contains(t, message, "pedido 3")
	assert.Contains(t, message, "disponible 2")
}

// Conflicto de concurrencia del gateway → 409 TX_CONFLICT.
func TestSaleHandler_ConflictoDeTransaccion_409(t *testing.T) {
	app := buildSalesApp(fmt.Errorf("%w: deadlock detected", domain.ErrTxConflict))
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[{"product_id":1,"quantity":1}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "TX_CONFLICT", code)
}

// Venta inexistente en lectura → 404 SALE_NOT_FOUND.
func TestSaleHandler_VentaNoExiste_404(t *testing.T) {
	app := buildSalesApp(nil)
	req := httptest.NewRequest(http.MethodGet, "/sales/999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "SALE_NOT_FOUND", code)
}

// Round-trip por HTTP: crear y leer la vista completa.
func TestSaleHandler_CrearYLeer(t *testing.T) {
	app := buildSalesApp(nil)
	resp := postSale(t, app, `{"customer_dni":12345678,"products":[{"product_id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/sales/1", nil)
	readResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer readResp.Body.Close()

	require.Equal(t, http.StatusOK, readResp.StatusCode)
	raw, _ := io.ReadAll(readResp.Body)
	assert.Contains(t, string(raw), `"Teclado"`)
	assert.Contains(t, string(raw), `"dni":12345678`)
}
