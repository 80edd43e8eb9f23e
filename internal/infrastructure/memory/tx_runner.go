package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones de movimiento sobre los repositorios en memoria.
// Si fn falla, las cantidades modificadas dentro de la transacción se restauran.
type TxRunner struct {
	mu        sync.Mutex
	items     *InventoryItemRepo
	movements repository.StockMovementRepository
}

// NewTxRunner construye el runner sobre los repositorios compartidos.
func NewTxRunner(items *InventoryItemRepo, movements repository.StockMovementRepository) *TxRunner {
	return &TxRunner{items: items, movements: movements}
}

// Run ejecuta fn con acceso exclusivo a los repositorios.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &txItemRepo{InventoryItemRepo: r.items, before: make(map[string]int)}
	if err := fn(tx, r.movements); err != nil {
		for id, q := range tx.before {
			_, _ = r.items.SetQuantity(ctx, id, q)
		}
		return err
	}
	return nil
}

// txItemRepo recuerda la cantidad previa de cada ítem tocado por SetQuantity.
type txItemRepo struct {
	*InventoryItemRepo
	before map[string]int
}

func (t *txItemRepo) SetQuantity(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error) {
	if _, seen := t.before[id]; !seen {
		cur, err := t.InventoryItemRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		t.before[id] = cur.Quantity
	}
	return t.InventoryItemRepo.SetQuantity(ctx, id, quantity)
}
