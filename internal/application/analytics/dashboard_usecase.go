// Package analytics contiene el caso de uso del resumen de negocio del
// punto de venta.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // productos en el widget de más vendidos
	lowStockThreshold    = 10 // umbral de alerta de stock bajo
)

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
// Fuente de datos: AnalyticsRepository (consultas read-only); no accede
// directamente a la tabla de ventas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO: métricas de hoy, del mes,
// top de productos vendidos y alertas de stock bajo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.analyticsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	month, err := uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, todayEnd)
	if err != nil {
		return nil, err
	}
	top, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analyticsRepo.GetLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:     today.SaleCount,
		TodayRevenue:   today.Revenue,
		MonthlySales:   month.SaleCount,
		MonthlyRevenue: month.Revenue,
		TopProducts:    make([]dto.TopProductDTO, 0, len(top)),
		LowStock:       make([]dto.LowStockItemDTO, 0, len(lowStock)),
	}
	for _, p := range top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Units:     p.Units,
			Revenue:   p.Revenue,
		})
	}
	for _, p := range lowStock {
		summary.LowStock = append(summary.LowStock, dto.LowStockItemDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Stock:     p.Stock,
		})
	}
	return summary, nil
}
