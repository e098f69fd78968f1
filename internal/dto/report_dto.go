package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the inventory dashboard snapshot.
type DashboardResponse struct {
	TotalProducts      int64                 `json:"total_products"`
	LowStockCount      int64                 `json:"low_stock_count"`
	PendingOrders      int64                 `json:"pending_orders"`
	ActiveSuppliers    int64                 `json:"active_suppliers"`
	RecentMovements    []MovementListItem    `json:"recent_movements"`
	RecentTransactions []TransactionListItem `json:"recent_transactions"`
}

// TransactionListItem is one sale in dashboard listings.
type TransactionListItem struct {
	ID                string          `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
	CreatedAt         string          `json:"created_at"`
}

// SalesSummaryResponse is one day's aggregated sales.
type SalesSummaryResponse struct {
	Date             string                   `json:"date"`
	TransactionCount int64                    `json:"transaction_count"`
	TotalSales       decimal.Decimal          `json:"total_sales"`
	TotalTax         decimal.Decimal          `json:"total_tax"`
	AverageSale      decimal.Decimal          `json:"average_sale"`
	PaymentBreakdown []PaymentBreakdownEntry `json:"payment_breakdown"`
}

type PaymentBreakdownEntry struct {
	Name  string          `json:"name"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}
