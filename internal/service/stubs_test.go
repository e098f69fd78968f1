package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs, driven either by the nil-DB TxManager or
// by memTxManager below when a test needs rollback behaviour.

// ── Transaction manager ──

// memStore is implemented by stubs whose state a rolled-back unit of
// work must not leave behind.
type memStore interface {
	snapshot() interface{}
	restore(interface{})
}

// memTxManager mimics a real database transaction over the stubs: the
// registered stores are snapshotted before the unit of work runs and
// restored wholesale when it returns an error.
type memTxManager struct{ stores []memStore }

func newMemTxManager(stores ...memStore) repository.TxManager {
	return &memTxManager{stores: stores}
}

func (m *memTxManager) RunInTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	snaps := make([]interface{}, len(m.stores))
	for i, s := range m.stores {
		snaps[i] = s.snapshot()
	}
	if err := fn(nil); err != nil {
		for i, s := range m.stores {
			s.restore(snaps[i])
		}
		return err
	}
	return nil
}

// ── Products ──

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	// setStockErrAfter forces SetStockTx to fail once n successful calls
	// have happened; 0 means never fail.
	setStockErrAfter int
	setStockCalls    int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku && p.Status != model.ProductDeleted {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Status != model.ProductDeleted {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = model.ProductDeleted
	return nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.Status == model.ProductActive {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) CountBySupplier(_ context.Context, supplierID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.SupplierID != nil && *p.SupplierID == supplierID && p.Status == model.ProductActive {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) SetStockTx(_ *gorm.DB, id uuid.UUID, quantity int) error {
	if r.setStockErrAfter > 0 && r.setStockCalls >= r.setStockErrAfter {
		return gorm.ErrInvalidTransaction
	}
	r.setStockCalls++
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *stubProductRepo) snapshot() interface{} {
	cp := make(map[uuid.UUID]*model.Product, len(r.products))
	for id, p := range r.products {
		c := *p
		cp[id] = &c
	}
	return cp
}

func (r *stubProductRepo) restore(s interface{}) {
	r.products = s.(map[uuid.UUID]*model.Product)
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Stock movements ──

type stubMovementRepo struct {
	movements []*model.StockMovement
	createErr error
}

func newStubMovementRepo() *stubMovementRepo { return &stubMovementRepo{} }

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter repository.StockMovementFilter) ([]model.StockMovement, int64, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		if filter.MovementType != "" && m.MovementType != filter.MovementType {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovementRepo) ListRecent(_ context.Context, since time.Time, limit int) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if m.CreatedAt.After(since) && len(out) < limit {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMovementRepo) SumForProduct(_ context.Context, productID uuid.UUID) (int, error) {
	sum := 0
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if model.MovementAdds(m.MovementType) {
			sum += m.Quantity
		} else {
			sum -= m.Quantity
		}
	}
	return sum, nil
}

func (r *stubMovementRepo) snapshot() interface{} {
	return append([]*model.StockMovement(nil), r.movements...)
}

func (r *stubMovementRepo) restore(s interface{}) {
	r.movements = s.([]*model.StockMovement)
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── Purchase orders ──

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.PurchaseOrder
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.PurchaseOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].PurchaseOrderID = o.ID
	}
	o.CreatedAt = time.Now()
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	cp.Items = append([]model.PurchaseOrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	var out []model.PurchaseOrder
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) CountOpen(_ context.Context) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == model.OrderPending || o.Status == model.OrderApproved {
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) CountActiveBySupplier(_ context.Context, supplierID uuid.UUID) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.SupplierID == supplierID && o.Status != model.OrderCancelled {
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) LastNumberForPrefixTx(_ *gorm.DB, prefix string) (string, error) {
	var numbers []string
	for _, o := range r.orders {
		if strings.HasPrefix(o.PONumber, prefix) {
			numbers = append(numbers, o.PONumber)
		}
	}
	if len(numbers) == 0 {
		return "", nil
	}
	sort.Strings(numbers)
	return numbers[len(numbers)-1], nil
}

func (r *stubOrderRepo) UpdateTx(_ *gorm.DB, o *model.PurchaseOrder) error {
	existing, ok := r.orders[o.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	items := existing.Items
	updated := *o
	updated.Items = items
	r.orders[o.ID] = &updated
	return nil
}

func (r *stubOrderRepo) ReplaceItemsTx(_ *gorm.DB, orderID uuid.UUID, items []model.PurchaseOrderItem) error {
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].PurchaseOrderID = orderID
	}
	o.Items = items
	return nil
}

func (r *stubOrderRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) SetStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	return r.SetStatus(context.Background(), id, status)
}

func (r *stubOrderRepo) snapshot() interface{} {
	cp := make(map[uuid.UUID]*model.PurchaseOrder, len(r.orders))
	for id, o := range r.orders {
		c := *o
		c.Items = append([]model.PurchaseOrderItem(nil), o.Items...)
		cp[id] = &c
	}
	return cp
}

func (r *stubOrderRepo) restore(s interface{}) {
	r.orders = s.(map[uuid.UUID]*model.PurchaseOrder)
}

var _ repository.PurchaseOrderRepository = (*stubOrderRepo)(nil)

// ── Suppliers ──

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) FindActiveByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok || s.Status != "active" {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context, _ dto.SupplierFilter) ([]model.Supplier, int64, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		if s.Status != "deleted" {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, ok := r.suppliers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Status = "deleted"
	return nil
}

func (r *stubSupplierRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.suppliers {
		if s.Status == "active" {
			n++
		}
	}
	return n, nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Sales transactions ──

type stubTransactionRepo struct {
	transactions    map[uuid.UUID]*model.SalesTransaction
	createErr       error
	updateStatusErr error
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{transactions: make(map[uuid.UUID]*model.SalesTransaction)}
}

func (r *stubTransactionRepo) CreateTx(_ *gorm.DB, t *model.SalesTransaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	for i := range t.Items {
		if t.Items[i].ID == uuid.Nil {
			t.Items[i].ID = uuid.New()
		}
		t.Items[i].TransactionID = t.ID
	}
	r.transactions[t.ID] = t
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SalesTransaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransactionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	t, ok := r.transactions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	return nil
}

func (r *stubTransactionRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	return r.UpdateStatus(context.Background(), id, status)
}

func (r *stubTransactionRepo) List(_ context.Context, _ dto.TransactionFilter) ([]model.SalesTransaction, int64, error) {
	var out []model.SalesTransaction
	for _, t := range r.transactions {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTransactionRepo) ListRecent(_ context.Context, _ time.Time, limit int) ([]model.SalesTransaction, error) {
	var out []model.SalesTransaction
	for _, t := range r.transactions {
		if len(out) < limit {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) DailySummary(_ context.Context, _ time.Time) (*repository.SalesSummaryRow, error) {
	row := &repository.SalesSummaryRow{}
	for _, t := range r.transactions {
		if t.Status != model.TransactionCompleted {
			continue
		}
		row.TransactionCount++
		row.TotalSales = row.TotalSales.Add(t.TotalAmount)
		row.TotalTax = row.TotalTax.Add(t.TaxAmount)
	}
	return row, nil
}

func (r *stubTransactionRepo) PaymentBreakdown(_ context.Context, _ time.Time) ([]repository.PaymentBreakdownRow, error) {
	return nil, nil
}

func (r *stubTransactionRepo) snapshot() interface{} {
	cp := make(map[uuid.UUID]*model.SalesTransaction, len(r.transactions))
	for id, t := range r.transactions {
		c := *t
		c.Items = append([]model.TransactionItem(nil), t.Items...)
		cp[id] = &c
	}
	return cp
}

func (r *stubTransactionRepo) restore(s interface{}) {
	r.transactions = s.(map[uuid.UUID]*model.SalesTransaction)
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// ── Payment methods ──

type stubPaymentMethodRepo struct {
	methods map[uuid.UUID]*model.PaymentMethod
}

func newStubPaymentMethodRepo() *stubPaymentMethodRepo {
	return &stubPaymentMethodRepo{methods: make(map[uuid.UUID]*model.PaymentMethod)}
}

func (r *stubPaymentMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubPaymentMethodRepo) ListActive(_ context.Context) ([]model.PaymentMethod, error) {
	var out []model.PaymentMethod
	for _, m := range r.methods {
		out = append(out, *m)
	}
	return out, nil
}

var _ repository.PaymentMethodRepository = (*stubPaymentMethodRepo)(nil)

// ── Recipes ──

type stubRecipeRepo struct {
	recipes map[uuid.UUID]*model.Recipe
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[uuid.UUID]*model.Recipe)}
}

func (r *stubRecipeRepo) CreateTx(_ *gorm.DB, rec *model.Recipe) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	for i := range rec.Ingredients {
		if rec.Ingredients[i].ID == uuid.Nil {
			rec.Ingredients[i].ID = uuid.New()
		}
		rec.Ingredients[i].RecipeID = rec.ID
	}
	r.recipes[rec.ID] = rec
	return nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok || rec.Status == "deleted" {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	cp.Ingredients = append([]model.RecipeIngredient(nil), rec.Ingredients...)
	return &cp, nil
}

func (r *stubRecipeRepo) List(_ context.Context, _ dto.RecipeFilter) ([]model.Recipe, int64, error) {
	var out []model.Recipe
	for _, rec := range r.recipes {
		if rec.Status != "deleted" {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubRecipeRepo) UpdateTx(_ *gorm.DB, rec *model.Recipe) error {
	existing, ok := r.recipes[rec.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	items := existing.Ingredients
	updated := *rec
	updated.Ingredients = items
	r.recipes[rec.ID] = &updated
	return nil
}

func (r *stubRecipeRepo) ReplaceIngredientsTx(_ *gorm.DB, recipeID uuid.UUID, ingredients []model.RecipeIngredient) error {
	rec, ok := r.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range ingredients {
		if ingredients[i].ID == uuid.Nil {
			ingredients[i].ID = uuid.New()
		}
		ingredients[i].RecipeID = recipeID
	}
	rec.Ingredients = ingredients
	return nil
}

func (r *stubRecipeRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	rec, ok := r.recipes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rec.Status = "deleted"
	return nil
}

var _ repository.RecipeRepository = (*stubRecipeRepo)(nil)

// ── Employees ──

type stubEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[uuid.UUID]*model.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) FindActiveByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok || e.Status != model.EmployeeActive {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) FindByNumber(_ context.Context, number string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeNumber == number {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context, filter dto.EmployeeFilter) ([]model.Employee, int64, error) {
	var out []model.Employee
	for _, e := range r.employees {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Status = model.EmployeeInactive
	return nil
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

// ── Schedules ──

type stubScheduleRepo struct {
	schedules map[uuid.UUID]*model.Schedule
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{schedules: make(map[uuid.UUID]*model.Schedule)}
}

func (r *stubScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.schedules[s.ID] = s
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *stubScheduleRepo) FindForEmployeeOn(_ context.Context, employeeID uuid.UUID, day time.Time) (*model.Schedule, error) {
	for _, s := range r.schedules {
		if s.EmployeeID == employeeID && sameDate(s.ScheduleDate, day) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubScheduleRepo) List(_ context.Context, filter dto.ScheduleFilter) ([]model.Schedule, int64, error) {
	var out []model.Schedule
	for _, s := range r.schedules {
		if filter.EmployeeID != "" && s.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

var _ repository.ScheduleRepository = (*stubScheduleRepo)(nil)

// ── Time entries ──

type stubTimeEntryRepo struct {
	entries map[uuid.UUID]*model.TimeEntry
}

func newStubTimeEntryRepo() *stubTimeEntryRepo {
	return &stubTimeEntryRepo{entries: make(map[uuid.UUID]*model.TimeEntry)}
}

func (r *stubTimeEntryRepo) Create(_ context.Context, e *model.TimeEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.entries[e.ID] = e
	return nil
}

func (r *stubTimeEntryRepo) FindOpenByEmployee(_ context.Context, employeeID uuid.UUID) (*model.TimeEntry, error) {
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.ClockOut == nil {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTimeEntryRepo) Update(_ context.Context, e *model.TimeEntry) error {
	r.entries[e.ID] = e
	return nil
}

func (r *stubTimeEntryRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID, from, to time.Time) ([]model.TimeEntry, error) {
	var out []model.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID != employeeID {
			continue
		}
		if e.ClockIn.Before(from) || !e.ClockIn.Before(to) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

var _ repository.TimeEntryRepository = (*stubTimeEntryRepo)(nil)
