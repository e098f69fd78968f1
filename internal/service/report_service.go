package service

import (
	"context"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"
)

// ReportService builds read-only aggregates for the dashboard and the
// daily sales summary. Everything here is derived on demand from the
// ledger and transaction tables.
type ReportService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	SalesSummary(ctx context.Context, day time.Time) (*dto.SalesSummaryResponse, error)
	Alerts(ctx context.Context, unreadOnly bool, limit int) ([]model.Alert, error)
}

type reportService struct {
	products     repository.ProductRepository
	movements    repository.StockMovementRepository
	orders       repository.PurchaseOrderRepository
	suppliers    repository.SupplierRepository
	transactions repository.TransactionRepository
	alerts       repository.AuditLogRepository
}

func NewReportService(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	orders repository.PurchaseOrderRepository,
	suppliers repository.SupplierRepository,
	transactions repository.TransactionRepository,
	alerts repository.AuditLogRepository,
) ReportService {
	return &reportService{
		products:     products,
		movements:    movements,
		orders:       orders,
		suppliers:    suppliers,
		transactions: transactions,
		alerts:       alerts,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalProducts, err := s.products.CountActive(ctx)
	if err != nil {
		return nil, persistencef("count products", err)
	}
	lowStock, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, persistencef("list low stock", err)
	}
	pendingOrders, err := s.orders.CountOpen(ctx)
	if err != nil {
		return nil, persistencef("count open orders", err)
	}
	activeSuppliers, err := s.suppliers.CountActive(ctx)
	if err != nil {
		return nil, persistencef("count suppliers", err)
	}
	recent, err := s.movements.ListRecent(ctx, time.Now().AddDate(0, 0, -7), 10)
	if err != nil {
		return nil, persistencef("list recent movements", err)
	}
	recentSales, err := s.transactions.ListRecent(ctx, time.Now().AddDate(0, 0, -7), 10)
	if err != nil {
		return nil, persistencef("list recent transactions", err)
	}

	resp := &dto.DashboardResponse{
		TotalProducts:      totalProducts,
		LowStockCount:      int64(len(lowStock)),
		PendingOrders:      pendingOrders,
		ActiveSuppliers:    activeSuppliers,
		RecentMovements:    make([]dto.MovementListItem, 0, len(recent)),
		RecentTransactions: make([]dto.TransactionListItem, 0, len(recentSales)),
	}
	for _, m := range recent {
		item := dto.MovementListItem{
			ID:           m.ID.String(),
			ProductID:    m.ProductID.String(),
			MovementType: m.MovementType,
			Quantity:     m.Quantity,
			UnitCost:     m.UnitCost,
			Notes:        m.Notes,
			CreatedAt:    m.CreatedAt.Format(time.RFC3339),
		}
		if m.Product != nil {
			item.ProductName = m.Product.Name
		}
		resp.RecentMovements = append(resp.RecentMovements, item)
	}
	for _, t := range recentSales {
		resp.RecentTransactions = append(resp.RecentTransactions, dto.TransactionListItem{
			ID:                t.ID.String(),
			TransactionNumber: t.TransactionNumber,
			TotalAmount:       t.TotalAmount,
			Status:            t.Status,
			CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *reportService) SalesSummary(ctx context.Context, day time.Time) (*dto.SalesSummaryResponse, error) {
	row, err := s.transactions.DailySummary(ctx, day)
	if err != nil {
		return nil, persistencef("daily summary", err)
	}
	breakdown, err := s.transactions.PaymentBreakdown(ctx, day)
	if err != nil {
		return nil, persistencef("payment breakdown", err)
	}

	resp := &dto.SalesSummaryResponse{
		Date:             day.Format("2006-01-02"),
		TransactionCount: row.TransactionCount,
		TotalSales:       row.TotalSales,
		TotalTax:         row.TotalTax,
		AverageSale:      row.AverageSale,
		PaymentBreakdown: make([]dto.PaymentBreakdownEntry, 0, len(breakdown)),
	}
	for _, b := range breakdown {
		resp.PaymentBreakdown = append(resp.PaymentBreakdown, dto.PaymentBreakdownEntry{
			Name:  b.Name,
			Count: b.Count,
			Total: b.Total,
		})
	}
	return resp, nil
}

// Alerts lists the low-stock alerts raised by the worker pool.
func (s *reportService) Alerts(ctx context.Context, unreadOnly bool, limit int) ([]model.Alert, error) {
	alerts, err := s.alerts.ListAlerts(ctx, unreadOnly, limit)
	if err != nil {
		return nil, persistencef("list alerts", err)
	}
	return alerts, nil
}
