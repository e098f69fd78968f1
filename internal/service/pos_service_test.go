package service

import (
	"context"
	"strings"
	"testing"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type posFixture struct {
	products       *stubProductRepo
	movements      *stubMovementRepo
	transactions   *stubTransactionRepo
	recipes        *stubRecipeRepo
	paymentMethods *stubPaymentMethodRepo
	svc            POSService
	paymentMethod  uuid.UUID
}

func newPOSFixture() *posFixture {
	f := &posFixture{
		products:       newStubProductRepo(),
		movements:      newStubMovementRepo(),
		transactions:   newStubTransactionRepo(),
		recipes:        newStubRecipeRepo(),
		paymentMethods: newStubPaymentMethodRepo(),
	}
	txm := newMemTxManager(f.products, f.movements, f.transactions)
	inventory := NewInventoryService(f.products, f.movements, txm, nil)
	f.svc = NewPOSService(f.transactions, f.products, f.recipes, f.paymentMethods, inventory, txm, nil, decimal.NewFromInt(20))

	pm := &model.PaymentMethod{ID: uuid.New(), Name: "Cash", IsActive: true}
	f.paymentMethods.methods[pm.ID] = pm
	f.paymentMethod = pm.ID
	return f
}

func productLine(p *model.Product, qty int, price float64) dto.CartItemRequest {
	id := p.ID.String()
	return dto.CartItemRequest{
		ProductID: &id,
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(price),
	}
}

func TestCheckoutTotals(t *testing.T) {
	f := newPOSFixture()
	a := seedProduct(f.products, "Espresso Beans", 100, 5)
	b := seedProduct(f.products, "Paper Cups", 100, 5)

	// subtotal 25.00, tax 20% → 5.00, total 30.00
	resp, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items: []dto.CartItemRequest{
			productLine(a, 2, 10.00),
			productLine(b, 1, 5.00),
		},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	assert.Equal(t, "25", resp.Subtotal.String())
	assert.Equal(t, "5", resp.TaxAmount.String())
	assert.Equal(t, "30", resp.TotalAmount.String())
	assert.Equal(t, "0", resp.ChangeGiven.String())
	assert.True(t, strings.HasPrefix(resp.TransactionNumber, "TXN-"))
	assert.Equal(t, model.TransactionCompleted, resp.Status)
}

func TestCheckoutChangeGiven(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Croissant", 50, 5)

	resp, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 2, 10.00), {Name: "Gift wrap", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(35),
	})
	require.NoError(t, err)
	assert.Equal(t, "5", resp.ChangeGiven.String())
}

func TestCheckoutInsufficientPayment(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Sandwich", 50, 5)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 1, 10.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(11), // total is 12.00 with 20% tax
	})
	require.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Empty(t, f.transactions.transactions)
	assert.Equal(t, 50, f.products.products[p.ID].StockQuantity)
}

func TestCheckoutDecrementsStock(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Bagel", 10, 2)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 3, 4.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	assert.Equal(t, 7, f.products.products[p.ID].StockQuantity)
	require.Len(t, f.movements.movements, 1)
	m := f.movements.movements[0]
	assert.Equal(t, model.MovementOut, m.MovementType)
	assert.Equal(t, "sale", m.ReferenceType)
	assert.Equal(t, 3, m.Quantity)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Last Slice", 2, 1)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 5, 3.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, f.products.products[p.ID].StockQuantity)
	assert.Empty(t, f.movements.movements)
}

func TestCheckoutRecipeDepletesIngredients(t *testing.T) {
	f := newPOSFixture()
	flour := seedProduct(f.products, "Flour", 100, 10)
	cheese := seedProduct(f.products, "Cheese", 50, 5)

	rec := &model.Recipe{
		ID:     uuid.New(),
		Name:   "Margherita",
		Status: "active",
		Ingredients: []model.RecipeIngredient{
			{ProductID: flour.ID, Quantity: decimal.NewFromFloat(0.5), Unit: "kg"},
			{ProductID: cheese.ID, Quantity: decimal.NewFromInt(2), Unit: "unit"},
		},
	}
	f.recipes.recipes[rec.ID] = rec

	rid := rec.ID.String()
	resp, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items: []dto.CartItemRequest{
			{RecipeID: &rid, Quantity: 2, UnitPrice: decimal.NewFromInt(12)},
		},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", resp.Items[0].ItemName)

	// 0.5 kg × 2 rounds up to 1 whole stock unit; 2 × 2 = 4 units of cheese.
	assert.Equal(t, 99, f.products.products[flour.ID].StockQuantity)
	assert.Equal(t, 46, f.products.products[cheese.ID].StockQuantity)
}

func TestCheckoutFailedInsertLeavesStockUntouched(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Muffin", 10, 2)
	f.transactions.createErr = gorm.ErrInvalidTransaction

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 1, 2.50)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.Equal(t, 10, f.products.products[p.ID].StockQuantity)
	assert.Empty(t, f.movements.movements)
}

func TestCheckoutMidTransactionFailureRollsBack(t *testing.T) {
	f := newPOSFixture()
	a := seedProduct(f.products, "Orange Juice", 10, 2)
	b := seedProduct(f.products, "Toast", 10, 2)

	// The transaction insert and the first decrement succeed, then the
	// second stock write fails. Nothing of the checkout may survive.
	f.products.setStockErrAfter = 1

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(a, 1, 3.00), productLine(b, 1, 2.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(10),
	})
	require.Error(t, err)

	assert.Empty(t, f.transactions.transactions)
	assert.Empty(t, f.movements.movements)
	assert.Equal(t, 10, f.products.products[a.ID].StockQuantity)
	assert.Equal(t, 10, f.products.products[b.ID].StockQuantity)
}

func TestCheckoutValidation(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Scone", 10, 2)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           nil,
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(5),
	})
	assert.True(t, IsValidation(err))

	// unknown payment method
	_, err = f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 1, 2.00)},
		PaymentMethodID: uuid.NewString(),
		AmountPaid:      decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// custom line without a name
	_, err = f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{{Quantity: 1, UnitPrice: decimal.NewFromInt(2)}},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(5),
	})
	assert.True(t, IsValidation(err))
}

func TestCheckoutCustomTaxRate(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Tea", 10, 2)

	zero := decimal.Zero
	resp, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 1, 10.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(10),
		TaxRate:         &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, "0", resp.TaxAmount.String())
	assert.Equal(t, "10", resp.TotalAmount.String())
}

func TestCheckoutDiscountBeforeTax(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Latte", 10, 2)

	// (20 - 5) × 1.20 = 18.00
	resp, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 2, 10.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(18),
		DiscountAmount:  decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "3", resp.TaxAmount.String())
	assert.Equal(t, "18", resp.TotalAmount.String())
}

func TestRefundRestocksProducts(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Brownie", 10, 2)
	user := uuid.New()

	resp, err := f.svc.Checkout(context.Background(), user, dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 4, 3.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.Equal(t, 6, f.products.products[p.ID].StockQuantity)

	err = f.svc.RefundTransaction(context.Background(), user, uuid.MustParse(resp.TransactionID))
	require.NoError(t, err)
	assert.Equal(t, 10, f.products.products[p.ID].StockQuantity)

	txn, err := f.svc.GetTransaction(context.Background(), uuid.MustParse(resp.TransactionID))
	require.NoError(t, err)
	assert.Equal(t, model.TransactionRefunded, txn.Status)

	// A second refund is rejected.
	err = f.svc.RefundTransaction(context.Background(), user, txn.ID)
	assert.True(t, IsValidation(err))
}

func TestRefundFailedStatusWriteRollsBackRestock(t *testing.T) {
	f := newPOSFixture()
	p := seedProduct(f.products, "Cookie", 10, 2)
	user := uuid.New()

	resp, err := f.svc.Checkout(context.Background(), user, dto.CheckoutRequest{
		Items:           []dto.CartItemRequest{productLine(p, 4, 3.00)},
		PaymentMethodID: f.paymentMethod.String(),
		AmountPaid:      decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.Equal(t, 6, f.products.products[p.ID].StockQuantity)
	id := uuid.MustParse(resp.TransactionID)

	// If the status flip fails, the restocking movements must fail with
	// it; otherwise a retried refund would restock twice.
	f.transactions.updateStatusErr = gorm.ErrInvalidTransaction
	err = f.svc.RefundTransaction(context.Background(), user, id)
	require.Error(t, err)
	assert.Equal(t, 6, f.products.products[p.ID].StockQuantity)
	assert.Equal(t, model.TransactionCompleted, f.transactions.transactions[id].Status)
	require.Len(t, f.movements.movements, 1) // only the sale itself

	// The retry restocks exactly once.
	f.transactions.updateStatusErr = nil
	require.NoError(t, f.svc.RefundTransaction(context.Background(), user, id))
	assert.Equal(t, 10, f.products.products[p.ID].StockQuantity)
	assert.Equal(t, model.TransactionRefunded, f.transactions.transactions[id].Status)
}
