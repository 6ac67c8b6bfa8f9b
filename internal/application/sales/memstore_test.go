package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// memStore estado compartido en memoria para los fakes de los tests.
type memStore struct {
	products  map[int64]*entity.Product
	sales     []*entity.Sale
	items     []*entity.SaleItem
	movements []*entity.StockMovement
	nextSale  int64
}

func newMemStore() *memStore {
	return &memStore{products: make(map[int64]*entity.Product), nextSale: 1}
}

func (s *memStore) addProduct(id int64, name string, stock int64, price string) {
	p, _ := decimal.NewFromString(price)
	s.products[id] = &entity.Product{ID: id, Name: name, Stock: stock, Price: p}
}

// snapshot copia profunda del estado, para simular rollback.
func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		products: make(map[int64]*entity.Product, len(s.products)),
		nextSale: s.nextSale,
	}
	for id, p := range s.products {
		clone := *p
		cp.products[id] = &clone
	}
	cp.sales = append(cp.sales, s.sales...)
	cp.items = append(cp.items, s.items...)
	cp.movements = append(cp.movements, s.movements...)
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.sales = snap.sales
	s.items = snap.items
	s.movements = snap.movements
	s.nextSale = snap.nextSale
}

// ── fakes de repositorios ────────────────────────────────────────────────────

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}
func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) Update(p *entity.Product) error {
	clone := *p
	r.store.products[p.ID] = &clone
	return nil
}
func (r *fakeProductRepo) UpdateStock(id, stock int64) error {
	if p, ok := r.store.products[id]; ok {
		p.Stock = stock
	}
	return nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id int64) error            { delete(r.store.products, id); return nil }

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.store.nextSale
	r.store.nextSale++
	sale.CreatedAt = time.Now()
	clone := *sale
	r.store.sales = append(r.store.sales, &clone)
	return nil
}

// CreateItem replica la consolidación por PK compuesta (product_id, sale_id).
func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	for _, existing := range r.store.items {
		if existing.ProductID == item.ProductID && existing.SaleID == item.SaleID {
			existing.Quantity += item.Quantity
			return nil
		}
	}
	clone := *item
	r.store.items = append(r.store.items, &clone)
	return nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	for _, s := range r.store.sales {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List() ([]*entity.Sale, error) { return r.store.sales, nil }

func (r *fakeSaleRepo) GetLinesBySaleID(saleID int64) ([]*entity.SaleLine, error) {
	var lines []*entity.SaleLine
	for _, item := range r.store.items {
		if item.SaleID != saleID {
			continue
		}
		p := r.store.products[item.ProductID]
		lines = append(lines, &entity.SaleLine{
			ProductID: item.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
		})
	}
	return lines, nil
}

type fakeMovementRepo struct {
	store   *memStore
	failErr error // si no es nil, Create falla (para probar atomicidad)
}

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	if r.failErr != nil {
		return r.failErr
	}
	clone := *mov
	clone.ID = int64(len(r.store.movements) + 1)
	r.store.movements = append(r.store.movements, &clone)
	return nil
}

func (r *fakeMovementRepo) ListBySaleID(saleID int64) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.SaleID == saleID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct{ customers map[int64]*entity.Customer }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.customers[c.DNI] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) GetByDNI(dni int64) (*entity.Customer, error) {
	c, ok := r.customers[dni]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) { return nil, nil }

// fakeTxRunner corre el callback sobre el memStore y, si falla, restaura el
// snapshot previo: mismo contrato de visibilidad que un rollback real.
type fakeTxRunner struct {
	store   *memStore
	movErr  error
	lastErr error
}

var _ sales.SaleTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeProductRepo{store: r.store},
		&fakeSaleRepo{store: r.store},
		&fakeMovementRepo{store: r.store, failErr: r.movErr},
	)
	if err != nil {
		r.store.restore(snap)
		r.lastErr = err
		return err
	}
	return nil
}

// newSaleFixture arma el entorno estándar: un cliente válido y el caso de uso.
func newSaleFixture(store *memStore) (*sales.CreateSaleUseCase, *fakeTxRunner, *fakeCustomerRepo) {
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		12345678: {ID: 1, DNI: 12345678, Name: "María", LastName: "Quispe", Email: "maria@example.com"},
	}}
	runner := &fakeTxRunner{store: store}
	uc := sales.NewCreateSaleUseCase(runner, customers)
	return uc, runner, customers
}
