package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO indicadores de la pantalla inicial.
type DashboardSummaryDTO struct {
	UserName       string          `json:"user_name"`
	TodayCount     int             `json:"today_count"`
	TodayTotal     decimal.Decimal `json:"today_total"`
	SalesCount     int             `json:"sales_count"`
	SalesTotal     decimal.Decimal `json:"sales_total"`
	ActiveProducts int             `json:"active_products"`
	TotalProducts  int             `json:"total_products"`
	ActiveClients  int             `json:"active_clients"`
	TotalClients   int             `json:"total_clients"`
	RecentSales    []SaleResponse  `json:"recent_sales"`
	NeedsSetup     bool            `json:"needs_setup"` // el usuario aún no completó su teléfono
	DateLabel      string          `json:"date_label"`
}
