package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ReadSaleUseCase reconstruye la vista de una venta: cabecera, líneas
// (join con productos) y snapshot del cliente.
//
// Nombre y precio de cada línea son los vigentes del catálogo al momento de
// la lectura, no los del momento de la venta; ventas históricas muestran el
// precio actual. Comportamiento observado, pendiente de confirmación de
// producto.
type ReadSaleUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewReadSaleUseCase construye el caso de uso.
func NewReadSaleUseCase(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *ReadSaleUseCase {
	return &ReadSaleUseCase{saleRepo: saleRepo, customerRepo: customerRepo}
}

// GetSale obtiene la vista completa de una venta por ID.
func (uc *ReadSaleUseCase) GetSale(ctx context.Context, id int64) (*dto.SaleReadResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}

	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByDNI(sale.CustomerDNI)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	resp := &dto.SaleReadResponse{
		ID:        sale.ID,
		Total:     sale.Total,
		CreatedAt: sale.CreatedAt,
		Customer: dto.CustomerSnapshot{
			DNI:      customer.DNI,
			Name:     customer.Name,
			LastName: customer.LastName,
			Email:    customer.Email,
		},
		Products: make([]dto.SaleLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		resp.Products = append(resp.Products, dto.SaleLineResponse{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	return resp, nil
}

// ListSales devuelve todas las cabeceras de venta (sin expandir líneas).
func (uc *ReadSaleUseCase) ListSales(ctx context.Context) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, &dto.SaleResponse{
			ID:          s.ID,
			Total:       s.Total,
			CreatedAt:   s.CreatedAt,
			CustomerDNI: s.CustomerDNI,
		})
	}
	return out, nil
}
