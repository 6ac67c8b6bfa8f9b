package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen financiero para GET /dashboard/summary.
type DashboardSummaryDTO struct {
	TodaySales     int64             `json:"today_sales"`
	TodayRevenue   decimal.Decimal   `json:"today_revenue"`
	MonthlySales   int64             `json:"monthly_sales"`
	MonthlyRevenue decimal.Decimal   `json:"monthly_revenue"`
	TopProducts    []TopProductDTO   `json:"top_products"`
	LowStock       []LowStockItemDTO `json:"low_stock"`
}

// TopProductDTO producto más vendido del mes.
type TopProductDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Units     int64           `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// LowStockItemDTO producto con stock en o por debajo del umbral.
type LowStockItemDTO struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
}
