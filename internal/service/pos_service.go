package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"
	"stockli/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var decimalHundred = decimal.NewFromInt(100)

// POSService handles checkout and transaction queries. A checkout
// persists the transaction, its line items and every resulting stock
// decrement in a single database transaction.
type POSService interface {
	Checkout(ctx context.Context, servedBy uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*model.SalesTransaction, error)
	ListTransactions(ctx context.Context, filter dto.TransactionFilter) ([]model.SalesTransaction, int64, error)
	RefundTransaction(ctx context.Context, performedBy, id uuid.UUID) error
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
}

type posService struct {
	transactions   repository.TransactionRepository
	products       repository.ProductRepository
	recipes        repository.RecipeRepository
	paymentMethods repository.PaymentMethodRepository
	inventory      InventoryService
	txm            repository.TxManager
	dispatcher     *worker.Dispatcher
	defaultTaxRate decimal.Decimal
}

func NewPOSService(
	transactions repository.TransactionRepository,
	products repository.ProductRepository,
	recipes repository.RecipeRepository,
	paymentMethods repository.PaymentMethodRepository,
	inventory InventoryService,
	txm repository.TxManager,
	dispatcher *worker.Dispatcher,
	defaultTaxRate decimal.Decimal,
) POSService {
	return &posService{
		transactions:   transactions,
		products:       products,
		recipes:        recipes,
		paymentMethods: paymentMethods,
		inventory:      inventory,
		txm:            txm,
		dispatcher:     dispatcher,
		defaultTaxRate: defaultTaxRate,
	}
}

// checkoutLine is a validated cart line with its resolved references.
type checkoutLine struct {
	productID *uuid.UUID
	recipe    *model.Recipe
	name      string
	quantity  int
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

func (s *posService) Checkout(ctx context.Context, servedBy uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, validationf("cart is empty")
	}
	if req.DiscountAmount.IsNegative() {
		return nil, validationf("discount_amount must not be negative")
	}

	pmID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		return nil, validationf("payment_method_id is not a valid uuid")
	}
	if _, err := s.paymentMethods.FindByID(ctx, pmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find payment method", err)
	}

	// Resolve every line before opening the transaction: validation
	// failures must leave no trace in the store.
	lines, err := s.resolveLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.total)
	}

	taxRate := s.defaultTaxRate
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, validationf("tax_rate must not be negative")
		}
		taxRate = *req.TaxRate
	}

	taxable := subtotal.Sub(req.DiscountAmount)
	if taxable.IsNegative() {
		return nil, validationf("discount exceeds subtotal")
	}
	taxAmount := taxable.Mul(taxRate).Div(decimalHundred).Round(2)
	total := taxable.Add(taxAmount)

	if req.AmountPaid.LessThan(total) {
		return nil, ErrInsufficientPayment
	}
	change := req.AmountPaid.Sub(total)

	txn := &model.SalesTransaction{
		TransactionNumber: fmt.Sprintf("TXN-%d", time.Now().UnixMilli()),
		Subtotal:          subtotal,
		TaxRate:           taxRate,
		TaxAmount:         taxAmount,
		DiscountAmount:    req.DiscountAmount,
		TotalAmount:       total,
		PaymentMethodID:   pmID,
		ServedBy:          servedBy,
		Status:            model.TransactionCompleted,
	}
	for _, l := range lines {
		var recipeID *uuid.UUID
		if l.recipe != nil {
			id := l.recipe.ID
			recipeID = &id
		}
		txn.Items = append(txn.Items, model.TransactionItem{
			ProductID:  l.productID,
			RecipeID:   recipeID,
			ItemName:   l.name,
			Quantity:   l.quantity,
			UnitPrice:  l.unitPrice,
			TotalPrice: l.total,
		})
	}

	var depleted []uuid.UUID
	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		if err := s.transactions.CreateTx(tx, txn); err != nil {
			return persistencef("insert transaction", err)
		}
		var err error
		depleted, err = s.depleteStockTx(tx, txn, lines, servedBy)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "checkout",
		UserID: servedBy.String(),
		Detail: map[string]interface{}{
			"transaction_number": txn.TransactionNumber,
			"total_amount":       total.String(),
			"item_count":         len(lines),
		},
	})
	for _, pid := range depleted {
		s.dispatcher.EnqueueLowStockCheck(ctx, pid.String())
	}

	resp := &dto.CheckoutResponse{
		TransactionID:     txn.ID.String(),
		TransactionNumber: txn.TransactionNumber,
		Subtotal:          subtotal,
		TaxRate:           taxRate,
		TaxAmount:         taxAmount,
		DiscountAmount:    req.DiscountAmount,
		TotalAmount:       total,
		AmountPaid:        req.AmountPaid,
		ChangeGiven:       change,
		Status:            txn.Status,
		CreatedAt:         txn.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range txn.Items {
		resp.Items = append(resp.Items, dto.CheckoutItemResponse{
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return resp, nil
}

func (s *posService) resolveLines(ctx context.Context, items []dto.CartItemRequest) ([]checkoutLine, error) {
	lines := make([]checkoutLine, 0, len(items))
	for i, it := range items {
		if it.Quantity <= 0 {
			return nil, validationf("item %d: quantity must be positive", i)
		}
		if it.UnitPrice.IsNegative() {
			return nil, validationf("item %d: unit_price must not be negative", i)
		}
		if it.ProductID != nil && it.RecipeID != nil {
			return nil, validationf("item %d: product_id and recipe_id are mutually exclusive", i)
		}

		line := checkoutLine{
			name:      it.Name,
			quantity:  it.Quantity,
			unitPrice: it.UnitPrice,
			total:     it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}

		switch {
		case it.ProductID != nil:
			pid, err := uuid.Parse(*it.ProductID)
			if err != nil {
				return nil, validationf("item %d: product_id is not a valid uuid", i)
			}
			p, err := s.products.FindByID(ctx, pid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrNotFound
				}
				return nil, persistencef("find product", err)
			}
			line.productID = &pid
			if line.name == "" {
				line.name = p.Name
			}
		case it.RecipeID != nil:
			rid, err := uuid.Parse(*it.RecipeID)
			if err != nil {
				return nil, validationf("item %d: recipe_id is not a valid uuid", i)
			}
			rec, err := s.recipes.FindByID(ctx, rid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrNotFound
				}
				return nil, persistencef("find recipe", err)
			}
			line.recipe = rec
			if line.name == "" {
				line.name = rec.Name
			}
		default:
			// Custom line: sold without touching inventory.
			if line.name == "" {
				return nil, validationf("item %d: name is required for custom items", i)
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// depleteStockTx applies one "out" movement per stock-tracked unit sold.
// Product lines decrement the product itself; recipe lines decrement
// each ingredient, scaled by line quantity and rounded up to whole
// stock units. Returns the set of touched product ids.
func (s *posService) depleteStockTx(tx *gorm.DB, txn *model.SalesTransaction, lines []checkoutLine, servedBy uuid.UUID) ([]uuid.UUID, error) {
	var touched []uuid.UUID
	refID := txn.ID

	apply := func(productID uuid.UUID, qty int) error {
		if qty <= 0 {
			return nil
		}
		_, err := s.inventory.ApplyMovementTx(tx, &model.StockMovement{
			ProductID:     productID,
			MovementType:  model.MovementOut,
			Quantity:      qty,
			ReferenceType: "sale",
			ReferenceID:   &refID,
			Notes:         "sale " + txn.TransactionNumber,
			PerformedBy:   servedBy,
		})
		if err != nil {
			return err
		}
		touched = append(touched, productID)
		return nil
	}

	for _, l := range lines {
		switch {
		case l.productID != nil:
			if err := apply(*l.productID, l.quantity); err != nil {
				return nil, err
			}
		case l.recipe != nil:
			for _, ing := range l.recipe.Ingredients {
				needed := ing.Quantity.Mul(decimal.NewFromInt(int64(l.quantity)))
				if err := apply(ing.ProductID, int(needed.Ceil().IntPart())); err != nil {
					return nil, err
				}
			}
		}
	}
	return touched, nil
}

func (s *posService) GetTransaction(ctx context.Context, id uuid.UUID) (*model.SalesTransaction, error) {
	t, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find transaction", err)
	}
	return t, nil
}

func (s *posService) ListTransactions(ctx context.Context, filter dto.TransactionFilter) ([]model.SalesTransaction, int64, error) {
	return s.transactions.List(ctx, filter)
}

// RefundTransaction marks a completed transaction refunded and restocks
// its product-backed lines.
func (s *posService) RefundTransaction(ctx context.Context, performedBy, id uuid.UUID) error {
	t, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistencef("find transaction", err)
	}
	if t.Status != model.TransactionCompleted {
		return validationf("only completed transactions can be refunded")
	}

	// The restocking movements and the status flip commit together:
	// a failed status write must not leave the stock already restored.
	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		for _, it := range t.Items {
			if it.ProductID == nil {
				continue
			}
			refID := t.ID
			if _, err := s.inventory.ApplyMovementTx(tx, &model.StockMovement{
				ProductID:     *it.ProductID,
				MovementType:  model.MovementIn,
				Quantity:      it.Quantity,
				ReferenceType: "sale",
				ReferenceID:   &refID,
				Notes:         "refund " + t.TransactionNumber,
				PerformedBy:   performedBy,
			}); err != nil {
				return err
			}
		}
		if err := s.transactions.UpdateStatusTx(tx, id, model.TransactionRefunded); err != nil {
			return persistencef("update transaction status", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "refund",
		UserID: performedBy.String(),
		Detail: map[string]interface{}{"transaction_number": t.TransactionNumber},
	})
	return nil
}

func (s *posService) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return s.paymentMethods.ListActive(ctx)
}
