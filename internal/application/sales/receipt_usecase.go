package sales

import "context"

// ReceiptUseCase genera el ticket PDF de una venta a partir de su vista de lectura.
type ReceiptUseCase struct {
	reader    *ReadSaleUseCase
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(reader *ReadSaleUseCase, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{reader: reader, generator: generator}
}

// GetReceipt devuelve los bytes del PDF del ticket. ErrSaleNotFound si la venta no existe.
func (uc *ReceiptUseCase) GetReceipt(ctx context.Context, saleID int64) ([]byte, error) {
	view, err := uc.reader.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceipt(ctx, view)
}
