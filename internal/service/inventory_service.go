package service

import (
	"context"
	"errors"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"
	"stockli/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService is the stock mutation engine: the only sanctioned
// path that changes a product's stock_quantity. Every change writes a
// StockMovement ledger row in the same transaction, so stock_quantity
// always equals the signed sum of the product's ledger.
type InventoryService interface {
	// ApplyMovement opens its own transaction.
	ApplyMovement(ctx context.Context, performedBy uuid.UUID, req dto.StockMovementRequest) (*dto.StockMovementResponse, error)
	// ApplyMovementTx runs inside the caller's transaction — used by
	// checkout and order receipt so their stock writes commit or roll
	// back with the rest of the flow.
	ApplyMovementTx(tx *gorm.DB, m *model.StockMovement) (*dto.StockMovementResponse, error)
	ListMovements(ctx context.Context, filter repository.StockMovementFilter) ([]model.StockMovement, int64, error)
	LowStock(ctx context.Context) ([]dto.LowStockItem, error)
}

type inventoryService struct {
	products   repository.ProductRepository
	movements  repository.StockMovementRepository
	txm        repository.TxManager
	dispatcher *worker.Dispatcher
}

func NewInventoryService(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	txm repository.TxManager,
	dispatcher *worker.Dispatcher,
) InventoryService {
	return &inventoryService{products: products, movements: movements, txm: txm, dispatcher: dispatcher}
}

func (s *inventoryService) ApplyMovement(ctx context.Context, performedBy uuid.UUID, req dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, validationf("product_id is not a valid uuid")
	}
	if !model.ValidMovementType(req.MovementType) {
		return nil, validationf("invalid movement type %q", req.MovementType)
	}
	if req.Quantity <= 0 {
		return nil, validationf("quantity must be positive")
	}

	// Existence check up front for a clean NotFound; the authoritative
	// read happens again under the row lock inside the transaction.
	if _, err := s.products.FindByID(ctx, pid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find product", err)
	}

	movement := &model.StockMovement{
		ProductID:     pid,
		MovementType:  req.MovementType,
		Quantity:      req.Quantity,
		UnitCost:      req.UnitCost,
		ReferenceType: "adjustment",
		Notes:         req.Notes,
		PerformedBy:   performedBy,
	}

	var result *dto.StockMovementResponse
	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		var err error
		result, err = s.ApplyMovementTx(tx, movement)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "stock_movement",
		UserID: performedBy.String(),
		Detail: map[string]interface{}{
			"product_id":    pid.String(),
			"movement_type": req.MovementType,
			"quantity":      req.Quantity,
			"old_quantity":  result.OldQuantity,
			"new_quantity":  result.NewQuantity,
		},
	})
	if !model.MovementAdds(req.MovementType) {
		s.dispatcher.EnqueueLowStockCheck(ctx, pid.String())
	}

	return result, nil
}

// ApplyMovementTx locks the product row, verifies the non-negativity
// invariant, then appends the ledger entry and writes the new quantity.
// Rejection happens before either write, so a failed movement leaves
// both product and ledger untouched.
func (s *inventoryService) ApplyMovementTx(tx *gorm.DB, m *model.StockMovement) (*dto.StockMovementResponse, error) {
	if m.Quantity <= 0 {
		return nil, validationf("quantity must be positive")
	}
	if !model.ValidMovementType(m.MovementType) {
		return nil, validationf("invalid movement type %q", m.MovementType)
	}

	p, err := s.products.FindByIDForUpdateTx(tx, m.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("lock product", err)
	}

	newQuantity := p.StockQuantity
	if model.MovementAdds(m.MovementType) {
		newQuantity += m.Quantity
	} else {
		newQuantity -= m.Quantity
		if newQuantity < 0 {
			return nil, ErrInsufficientStock
		}
	}

	if err := s.movements.CreateTx(tx, m); err != nil {
		return nil, persistencef("insert movement", err)
	}
	if err := s.products.SetStockTx(tx, m.ProductID, newQuantity); err != nil {
		return nil, persistencef("update stock", err)
	}

	return &dto.StockMovementResponse{
		OldQuantity:      p.StockQuantity,
		NewQuantity:      newQuantity,
		MovementQuantity: m.Quantity,
	}, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, filter repository.StockMovementFilter) ([]model.StockMovement, int64, error) {
	return s.movements.List(ctx, filter)
}

func (s *inventoryService) LowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	products, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, persistencef("list low stock", err)
	}
	items := make([]dto.LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.LowStockItem{
			ID:            p.ID.String(),
			Name:          p.Name,
			SKU:           p.SKU,
			StockQuantity: p.StockQuantity,
			ReorderPoint:  p.ReorderPoint,
			Shortage:      p.ReorderPoint - p.StockQuantity,
		})
	}
	return items, nil
}
