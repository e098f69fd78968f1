package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"
	"stockli/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrderService owns order numbering, amendment and receipt.
type PurchaseOrderService interface {
	CreateOrder(ctx context.Context, createdBy uuid.UUID, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	ListOrders(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error)
	AmendOrder(ctx context.Context, id uuid.UUID, req dto.AmendOrderRequest) (*model.PurchaseOrder, error)
	// SetStatus overwrites the status without transition checks. Receipt
	// side effects only happen through ReceiveOrder.
	SetStatus(ctx context.Context, performedBy, id uuid.UUID, status string) error
	// ReceiveOrder marks the order delivered and books an "in" movement
	// for every line, all in one transaction.
	ReceiveOrder(ctx context.Context, performedBy, id uuid.UUID) error
}

type purchaseOrderService struct {
	orders     repository.PurchaseOrderRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	inventory  InventoryService
	txm        repository.TxManager
	dispatcher *worker.Dispatcher
	now        func() time.Time
}

func NewPurchaseOrderService(
	orders repository.PurchaseOrderRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	inventory InventoryService,
	txm repository.TxManager,
	dispatcher *worker.Dispatcher,
) PurchaseOrderService {
	return &purchaseOrderService{
		orders:     orders,
		suppliers:  suppliers,
		products:   products,
		inventory:  inventory,
		txm:        txm,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// nextPONumber allocates the next number for the current year, in the
// form PO-<YYYY><NNN>. The predecessor row is read under FOR UPDATE so
// concurrent creations serialize; the unique index on po_number is the
// backstop.
func (s *purchaseOrderService) nextPONumber(tx *gorm.DB) (string, error) {
	prefix := fmt.Sprintf("PO-%d", s.now().Year())
	last, err := s.orders.LastNumberForPrefixTx(tx, prefix)
	if err != nil {
		return "", persistencef("read last order number", err)
	}
	seq := 1
	if last != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", persistencef("parse order number", fmt.Errorf("malformed po_number %q", last))
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

func buildOrderItems(items []dto.OrderItemRequest) ([]model.PurchaseOrderItem, decimal.Decimal, error) {
	out := make([]model.PurchaseOrderItem, 0, len(items))
	total := decimal.Zero
	for i, it := range items {
		pid, err := uuid.Parse(it.ProductID)
		if err != nil {
			return nil, decimal.Zero, validationf("item %d: product_id is not a valid uuid", i)
		}
		if it.Quantity <= 0 {
			return nil, decimal.Zero, validationf("item %d: quantity must be positive", i)
		}
		if it.UnitPrice.IsNegative() {
			return nil, decimal.Zero, validationf("item %d: unit_price must not be negative", i)
		}
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		out = append(out, model.PurchaseOrderItem{
			ProductID:  pid,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return out, total, nil
}

func parseDeliveryDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, validationf("expected_delivery must be YYYY-MM-DD")
	}
	return &t, nil
}

func (s *purchaseOrderService) CreateOrder(ctx context.Context, createdBy uuid.UUID, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, validationf("supplier_id is not a valid uuid")
	}
	// Orders may only reference active suppliers.
	if _, err := s.suppliers.FindActiveByID(ctx, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find supplier", err)
	}
	if len(req.Items) == 0 {
		return nil, validationf("order needs at least one item")
	}
	items, total, err := buildOrderItems(req.Items)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if _, err := s.products.FindByID(ctx, it.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, persistencef("find product", err)
		}
	}
	delivery, err := parseDeliveryDate(req.ExpectedDelivery)
	if err != nil {
		return nil, err
	}

	order := &model.PurchaseOrder{
		SupplierID:       supplierID,
		TotalAmount:      total,
		ExpectedDelivery: delivery,
		Notes:            req.Notes,
		Status:           model.OrderPending,
		CreatedBy:        createdBy,
		Items:            items,
	}

	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		number, err := s.nextPONumber(tx)
		if err != nil {
			return err
		}
		order.PONumber = number
		if err := s.orders.CreateTx(tx, order); err != nil {
			return persistencef("insert order", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "purchase_order_created",
		UserID: createdBy.String(),
		Detail: map[string]interface{}{
			"po_number":    order.PONumber,
			"supplier_id":  supplierID.String(),
			"total_amount": total.String(),
		},
	})

	return &dto.CreateOrderResponse{
		ID:          order.ID.String(),
		PONumber:    order.PONumber,
		TotalAmount: total,
	}, nil
}

func (s *purchaseOrderService) GetOrder(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find order", err)
	}
	return o, nil
}

func (s *purchaseOrderService) ListOrders(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	return s.orders.List(ctx, filter)
}

// AmendOrder rejects delivered and cancelled orders, then applies scalar
// changes and, when a replacement item set is given, swaps the whole set
// and recomputes the total. The order row is locked for the duration.
func (s *purchaseOrderService) AmendOrder(ctx context.Context, id uuid.UUID, req dto.AmendOrderRequest) (*model.PurchaseOrder, error) {
	var newItems []model.PurchaseOrderItem
	var newTotal decimal.Decimal
	if req.Items != nil {
		if len(req.Items) == 0 {
			return nil, validationf("replacement item set must not be empty")
		}
		var err error
		newItems, newTotal, err = buildOrderItems(req.Items)
		if err != nil {
			return nil, err
		}
	}
	delivery, err := parseDeliveryDate(req.ExpectedDelivery)
	if err != nil {
		return nil, err
	}
	var supplierID *uuid.UUID
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, validationf("supplier_id is not a valid uuid")
		}
		if _, err := s.suppliers.FindActiveByID(ctx, sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, persistencef("find supplier", err)
		}
		supplierID = &sid
	}

	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		order, err := s.orders.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistencef("lock order", err)
		}
		if model.OrderTerminal(order.Status) {
			return ErrInvalidStateTransition
		}

		if supplierID != nil {
			order.SupplierID = *supplierID
		}
		if req.ExpectedDelivery != nil {
			order.ExpectedDelivery = delivery
		}
		if req.Notes != nil {
			order.Notes = req.Notes
		}
		if req.Items != nil {
			if err := s.orders.ReplaceItemsTx(tx, id, newItems); err != nil {
				return persistencef("replace order items", err)
			}
			order.TotalAmount = newTotal
		}
		order.Items = nil
		if err := s.orders.UpdateTx(tx, order); err != nil {
			return persistencef("update order", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetOrder(ctx, id)
}

func (s *purchaseOrderService) SetStatus(ctx context.Context, performedBy, id uuid.UUID, status string) error {
	if !model.ValidOrderStatus(status) {
		return validationf("invalid order status %q", status)
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistencef("find order", err)
	}
	if err := s.orders.SetStatus(ctx, id, status); err != nil {
		return persistencef("set order status", err)
	}
	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "purchase_order_status",
		UserID: performedBy.String(),
		Detail: map[string]interface{}{
			"po_number": o.PONumber,
			"from":      o.Status,
			"to":        status,
		},
	})
	return nil
}

func (s *purchaseOrderService) ReceiveOrder(ctx context.Context, performedBy, id uuid.UUID) error {
	var poNumber string
	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		order, err := s.orders.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistencef("lock order", err)
		}
		if order.Status == model.OrderDelivered {
			return validationf("order is already delivered")
		}
		if order.Status == model.OrderCancelled {
			return ErrInvalidStateTransition
		}
		poNumber = order.PONumber

		refID := order.ID
		for i := range order.Items {
			it := order.Items[i]
			cost := it.UnitPrice
			if _, err := s.inventory.ApplyMovementTx(tx, &model.StockMovement{
				ProductID:     it.ProductID,
				MovementType:  model.MovementIn,
				Quantity:      it.Quantity,
				UnitCost:      &cost,
				ReferenceType: "purchase_order",
				ReferenceID:   &refID,
				Notes:         "receipt " + order.PONumber,
				PerformedBy:   performedBy,
			}); err != nil {
				return err
			}
		}
		if err := s.orders.SetStatusTx(tx, id, model.OrderDelivered); err != nil {
			return persistencef("set order status", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "purchase_order_received",
		UserID: performedBy.String(),
		Detail: map[string]interface{}{"po_number": poNumber},
	})
	return nil
}
