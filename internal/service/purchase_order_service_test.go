package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders    *stubOrderRepo
	suppliers *stubSupplierRepo
	products  *stubProductRepo
	movements *stubMovementRepo
	svc       PurchaseOrderService
	supplier  uuid.UUID
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:    newStubOrderRepo(),
		suppliers: newStubSupplierRepo(),
		products:  newStubProductRepo(),
		movements: newStubMovementRepo(),
	}
	txm := newMemTxManager(f.orders, f.products, f.movements)
	inventory := NewInventoryService(f.products, f.movements, txm, nil)
	f.svc = NewPurchaseOrderService(f.orders, f.suppliers, f.products, inventory, txm, nil)

	sup := &model.Supplier{ID: uuid.New(), CompanyName: "Acme Wholesale", Status: "active"}
	f.suppliers.suppliers[sup.ID] = sup
	f.supplier = sup.ID
	return f
}

func (f *orderFixture) orderItem(p *model.Product, qty int, price float64) dto.OrderItemRequest {
	return dto.OrderItemRequest{
		ProductID: p.ID.String(),
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(price),
	}
}

func TestCreateOrderAllocatesSequentialNumbers(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Napkins", 0, 5)
	year := time.Now().Year()

	first, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 10, 1.50)},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("PO-%d001", year), first.PONumber)

	second, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 5, 2.00)},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("PO-%d002", year), second.PONumber)
}

func TestCreateOrderComputesTotal(t *testing.T) {
	f := newOrderFixture()
	a := seedProduct(f.products, "Boxes", 0, 5)
	b := seedProduct(f.products, "Tape", 0, 5)

	resp, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items: []dto.OrderItemRequest{
			f.orderItem(a, 3, 2.00), // 6.00
			f.orderItem(b, 2, 1.25), // 2.50
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "8.5", resp.TotalAmount.String())

	order, err := f.svc.GetOrder(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Len(t, order.Items, 2)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Labels", 0, 5)

	_, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: uuid.NewString(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 1, 1.00)},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      nil,
	})
	assert.True(t, IsValidation(err))

	_, err = f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{{ProductID: p.ID.String(), Quantity: 0, UnitPrice: decimal.NewFromInt(1)}},
	})
	assert.True(t, IsValidation(err))
}

func TestCreateOrderRejectsInactiveSupplier(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Twine", 0, 5)

	gone := &model.Supplier{ID: uuid.New(), CompanyName: "Folded Ltd", Status: "deleted"}
	f.suppliers.suppliers[gone.ID] = gone
	dormant := &model.Supplier{ID: uuid.New(), CompanyName: "On Hold GmbH", Status: "inactive"}
	f.suppliers.suppliers[dormant.ID] = dormant

	for _, sup := range []*model.Supplier{gone, dormant} {
		_, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
			SupplierID: sup.ID.String(),
			Items:      []dto.OrderItemRequest{f.orderItem(p, 1, 1.00)},
		})
		assert.ErrorIs(t, err, ErrNotFound, sup.Status)
	}
	// No order, and no number burned.
	assert.Empty(t, f.orders.orders)
}

func TestAmendOrderReplacesItemsAndRecomputesTotal(t *testing.T) {
	f := newOrderFixture()
	a := seedProduct(f.products, "Jars", 0, 5)
	b := seedProduct(f.products, "Lids", 0, 5)

	created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(a, 3, 2.00)}, // total 6.00
	})
	require.NoError(t, err)
	assert.Equal(t, "6", created.TotalAmount.String())

	amended, err := f.svc.AmendOrder(context.Background(), uuid.MustParse(created.ID), dto.AmendOrderRequest{
		Items: []dto.OrderItemRequest{f.orderItem(b, 5, 2.00)}, // total 10.00
	})
	require.NoError(t, err)
	assert.Equal(t, "10", amended.TotalAmount.String())
	require.Len(t, amended.Items, 1)
	assert.Equal(t, b.ID, amended.Items[0].ProductID)
	// Number survives amendment.
	assert.Equal(t, created.PONumber, amended.PONumber)
}

func TestAmendOrderScalarOnlyKeepsTotal(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Crates", 0, 5)

	created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 4, 3.00)},
	})
	require.NoError(t, err)

	notes := "deliver to back entrance"
	amended, err := f.svc.AmendOrder(context.Background(), uuid.MustParse(created.ID), dto.AmendOrderRequest{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "12", amended.TotalAmount.String())
	require.NotNil(t, amended.Notes)
	assert.Equal(t, notes, *amended.Notes)
	assert.Len(t, amended.Items, 1)
}

func TestAmendOrderRejectsInactiveSupplier(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "String", 0, 5)

	created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 2, 1.00)},
	})
	require.NoError(t, err)

	gone := &model.Supplier{ID: uuid.New(), CompanyName: "Folded Ltd", Status: "deleted"}
	f.suppliers.suppliers[gone.ID] = gone

	sid := gone.ID.String()
	_, err = f.svc.AmendOrder(context.Background(), uuid.MustParse(created.ID), dto.AmendOrderRequest{
		SupplierID: &sid,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	order, err := f.svc.GetOrder(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, f.supplier, order.SupplierID)
}

func TestAmendOrderRejectsTerminalStates(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Pallets", 0, 5)

	for _, status := range []string{model.OrderDelivered, model.OrderCancelled} {
		created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
			SupplierID: f.supplier.String(),
			Items:      []dto.OrderItemRequest{f.orderItem(p, 1, 1.00)},
		})
		require.NoError(t, err)
		id := uuid.MustParse(created.ID)
		require.NoError(t, f.orders.SetStatus(context.Background(), id, status))

		_, err = f.svc.AmendOrder(context.Background(), id, dto.AmendOrderRequest{
			Items: []dto.OrderItemRequest{f.orderItem(p, 9, 9.00)},
		})
		assert.ErrorIs(t, err, ErrInvalidStateTransition, status)
	}
}

func TestSetStatusIsUnguardedOverwrite(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Sacks", 0, 5)

	created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 1, 1.00)},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// Any valid status overwrites any other, including backwards moves.
	require.NoError(t, f.svc.SetStatus(context.Background(), uuid.New(), id, model.OrderDelivered))
	require.NoError(t, f.svc.SetStatus(context.Background(), uuid.New(), id, model.OrderPending))

	order, err := f.svc.GetOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)

	err = f.svc.SetStatus(context.Background(), uuid.New(), id, "vanished")
	assert.True(t, IsValidation(err))
}

func TestReceiveOrderBooksStockAndDelivers(t *testing.T) {
	f := newOrderFixture()
	a := seedProduct(f.products, "Beans", 5, 10)
	b := seedProduct(f.products, "Filters", 0, 10)

	created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items: []dto.OrderItemRequest{
			f.orderItem(a, 20, 4.00),
			f.orderItem(b, 100, 0.10),
		},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, f.svc.ReceiveOrder(context.Background(), uuid.New(), id))

	assert.Equal(t, 25, f.products.products[a.ID].StockQuantity)
	assert.Equal(t, 100, f.products.products[b.ID].StockQuantity)

	order, err := f.svc.GetOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, order.Status)

	require.Len(t, f.movements.movements, 2)
	for _, m := range f.movements.movements {
		assert.Equal(t, model.MovementIn, m.MovementType)
		assert.Equal(t, "purchase_order", m.ReferenceType)
	}

	// Receiving twice is rejected.
	err = f.svc.ReceiveOrder(context.Background(), uuid.New(), id)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 25, f.products.products[a.ID].StockQuantity)
}

func TestReceiveCancelledOrderRejected(t *testing.T) {
	f := newOrderFixture()
	p := seedProduct(f.products, "Straws", 0, 5)

	created, err := f.svc.CreateOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		SupplierID: f.supplier.String(),
		Items:      []dto.OrderItemRequest{f.orderItem(p, 10, 0.50)},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)
	require.NoError(t, f.orders.SetStatus(context.Background(), id, model.OrderCancelled))

	err = f.svc.ReceiveOrder(context.Background(), uuid.New(), id)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Empty(t, f.movements.movements)
}
