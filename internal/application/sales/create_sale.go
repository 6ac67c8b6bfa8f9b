package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CreateSaleUseCase crea una venta y descuenta el stock en una sola transacción.
//
// Orden de validación, cada paso con su error propio:
//  1. la orden no puede estar vacía (ErrEmptyOrder);
//  2. el cliente debe existir por DNI (ErrCustomerNotFound);
//  3. por cada línea, en el orden del caller: producto existente
//     (ProductNotFoundError), cantidad válida y stock en curso suficiente
//     (InsufficientStockError con pedido y disponible).
//
// El chequeo de stock se hace contra el valor ya decrementado por líneas
// anteriores de la misma orden: entradas repetidas del mismo producto se
// evalúan secuencialmente, sin pre-agregación.
type CreateSaleUseCase struct {
	txRunner     SaleTxRunner
	customerRepo repository.CustomerRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner SaleTxRunner, customerRepo repository.CustomerRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, customerRepo: customerRepo}
}

// stagedLine línea validada pendiente de persistir (la venta aún no tiene ID).
type stagedLine struct {
	productID int64
	quantity  int64
	price     decimal.Decimal
}

// CreateSale valida la orden, bloquea y descuenta stock por línea, calcula el
// total con aritmética decimal exacta y persiste cabecera, líneas y
// movimientos de auditoría en un solo commit. Ante cualquier fallo (o
// cancelación del contexto) no queda visible ningún decremento ni fila.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, createdBy string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Products) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	// Cliente fuera de la tx: solo lectura, no requiere lock.
	customer, err := uc.customerRepo.GetByDNI(in.CustomerDNI)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	txID := uuid.New().String()
	var sale *entity.Sale

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
	) error {
		total := decimal.Zero
		staged := make([]stagedLine, 0, len(in.Products))

		for _, item := range in.Products {
			qty := item.Quantity
			if qty == 0 {
				qty = 1 // cantidad por defecto
			}
			if qty < 0 {
				return domain.ErrInvalidInput
			}

			// FOR UPDATE: la fila queda bloqueada hasta commit/rollback, y una
			// entrada repetida del mismo producto relee el stock ya decrementado.
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			if product.Stock < qty {
				return &domain.InsufficientStockError{
					ProductID: item.ProductID,
					Requested: qty,
					Available: product.Stock,
				}
			}

			if err := productRepo.UpdateStock(product.ID, product.Stock-qty); err != nil {
				return err
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(qty)))
			staged = append(staged, stagedLine{productID: product.ID, quantity: qty, price: product.Price})
		}

		// Cabecera: el servidor asigna ID y created_at (RETURNING).
		sale = &entity.Sale{Total: total, CustomerDNI: in.CustomerDNI}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, line := range staged {
			item := &entity.SaleItem{ProductID: line.productID, SaleID: sale.ID, Quantity: line.quantity}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				TransactionID: txID,
				SaleID:        sale.ID,
				ProductID:     line.productID,
				Quantity:      -line.quantity,
				CreatedBy:     createdBy,
				CreatedAt:     sale.CreatedAt,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:          sale.ID,
		Total:       sale.Total,
		CreatedAt:   sale.CreatedAt,
		CustomerDNI: sale.CustomerDNI,
	}, nil
}
