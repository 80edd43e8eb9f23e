package inventory_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

var errStoreDown = errors.New("almacén caído")

var (
	admin    = &entity.AuthUser{ID: "u-admin", Email: "admin@magazzino.it", Role: entity.RoleAdmin}
	operator = &entity.AuthUser{ID: "u-op", Email: "op@magazzino.it", Role: entity.RoleOperator}
	viewer   = &entity.AuthUser{ID: "u-view", Email: "view@magazzino.it", Role: entity.RoleViewer}
)

// failingOrderRepo falla Append mientras fail sea true.
type failingOrderRepo struct {
	*memory.PurchaseOrderRepo
	mu   sync.Mutex
	fail bool
}

func (r *failingOrderRepo) setFail(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = v
}

func (r *failingOrderRepo) Append(ctx context.Context, o *entity.PurchaseOrder) error {
	r.mu.Lock()
	fail := r.fail
	r.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return r.PurchaseOrderRepo.Append(ctx, o)
}

// failingItemRepo falla SetQuantity.
type failingItemRepo struct {
	*memory.InventoryItemRepo
}

func (r *failingItemRepo) SetQuantity(context.Context, string, int) (*entity.InventoryItem, error) {
	return nil, errStoreDown
}

// failingTxRunner ejecuta fn sobre un repositorio de ítems que no puede escribir.
type failingTxRunner struct {
	items *memory.InventoryItemRepo
	movs  repository.StockMovementRepository
}

func (r *failingTxRunner) Run(_ context.Context, fn func(repository.InventoryItemRepository, repository.StockMovementRepository) error) error {
	return fn(&failingItemRepo{r.items}, r.movs)
}

// fakeDevice dispositivo de captura programable.
type fakeDevice struct {
	openErr error
	code    string
	readErr error
	block   chan struct{}
	opened  bool
	closed  bool
}

func (d *fakeDevice) Open(context.Context) error {
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = true
	return nil
}

func (d *fakeDevice) ReadCode(ctx context.Context) (string, error) {
	if d.block != nil {
		select {
		case <-d.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return d.code, d.readErr
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

// fakeExporter exportador que lista los SKUs separados por coma.
type fakeExporter struct{}

func (fakeExporter) Format() string      { return "txt" }
func (fakeExporter) ContentType() string { return "text/plain" }
func (fakeExporter) Export(_ context.Context, doc dto.OrderDocument) ([]byte, error) {
	out := doc.Reference
	for _, l := range doc.Lines {
		out += "," + l.SKU
	}
	return []byte(out), nil
}

func item(id, sku string, wh entity.WarehouseName, qty int, minStock *int) *entity.InventoryItem {
	return &entity.InventoryItem{ID: id, Name: "Prodotto " + sku, SKU: sku, Quantity: qty, Warehouse: wh, MinStock: minStock}
}
