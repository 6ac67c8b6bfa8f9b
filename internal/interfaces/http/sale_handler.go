package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	createUC  *sales.CreateSaleUseCase
	readUC    *sales.ReadSaleUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, readUC *sales.ReadSaleUseCase, receiptUC *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, readUC: readUC, receiptUC: receiptUC}
}

// Create registra una venta y descuenta stock atómicamente.
// POST /sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateSale(c.Context(), GetUsername(c), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// saleError traduce errores del motor de ventas a respuestas HTTP.
func saleError(c *fiber.Ctx, err error) error {
	var notFound *domain.ProductNotFoundError
	var noStock *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_ORDER", Message: "la venta no tiene productos"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "cliente no encontrado"})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "PRODUCT_NOT_FOUND",
			Message: fmt.Sprintf("producto %d no encontrado", notFound.ProductID),
		})
	case errors.As(err, &noStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente para producto %d: pedido %d, disponible %d",
				noStock.ProductID, noStock.Requested, noStock.Available),
		})
	case errors.Is(err, domain.ErrTxConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TX_CONFLICT", Message: "conflicto de concurrencia, reintente la venta"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// GetByID obtiene la vista completa de una venta.
// GET /sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.readUC.GetSale(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SALE_NOT_FOUND", Message: "venta no encontrada"})
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List devuelve todas las cabeceras de venta.
// GET /sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.readUC.ListSales(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt devuelve el ticket PDF de una venta.
// GET /sales/:id/receipt
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdfBytes, err := h.receiptUC.GetReceipt(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SALE_NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="venta_%d.pdf"`, id))
	return c.Send(pdfBytes)
}
