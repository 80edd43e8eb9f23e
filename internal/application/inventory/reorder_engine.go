package inventory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	domaininv "github.com/jhoicas/magazzino-api/internal/domain/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

// View vista superior del motor de reposición.
type View string

// Phase subestado de la vista de propuesta.
type Phase string

const (
	ViewProposal View = "proposal"
	ViewHistory  View = "history"

	PhaseEditing    Phase = "editing"
	PhaseReviewing  Phase = "reviewing"
	PhaseCommitting Phase = "committing"
)

// ProposalReference referencia del documento exportado para la propuesta viva.
const ProposalReference = "PROPOSAL"

// ReorderEngine motor de reposición de una sesión de operador.
// Deriva la propuesta del inventario, admite ajustes locales y, al confirmar,
// emite una orden de compra inmutable que se agrega a la historia.
// Committing no se puede cancelar: el mutex se mantiene tomado hasta que Append responde.
type ReorderEngine struct {
	mu        sync.Mutex
	itemRepo  repository.InventoryItemRepository
	orderRepo repository.PurchaseOrderRepository
	metrics   ports.Metrics
	log       *logger.Logger
	now       func() time.Time
	randN     func(n int) int

	view     View
	phase    Phase
	lines    []entity.ReorderLine
	computed bool
}

// EngineOption ajusta dependencias opcionales del motor.
type EngineOption func(*ReorderEngine)

// WithClock fija el reloj usado para created_at y el año del ID de la orden.
func WithClock(now func() time.Time) EngineOption {
	return func(e *ReorderEngine) { e.now = now }
}

// WithRandom fija la fuente del sufijo aleatorio del ID (0 <= randN(n) < n).
func WithRandom(randN func(n int) int) EngineOption {
	return func(e *ReorderEngine) { e.randN = randN }
}

// NewReorderEngine construye un motor en vista de propuesta, fase de edición, sin líneas calculadas.
func NewReorderEngine(
	itemRepo repository.InventoryItemRepository,
	orderRepo repository.PurchaseOrderRepository,
	metrics ports.Metrics,
	log *logger.Logger,
	opts ...EngineOption,
) *ReorderEngine {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	e := &ReorderEngine{
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
		metrics:   metrics,
		log:       log.Component("reorder"),
		now:       time.Now,
		randN:     rand.IntN,
		view:      ViewProposal,
		phase:     PhaseEditing,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Snapshot devuelve el estado actual sin recalcular.
func (e *ReorderEngine) Snapshot() dto.ReorderStateDTO {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *ReorderEngine) snapshotLocked() dto.ReorderStateDTO {
	lines := toReorderLineDTOs(e.lines)
	return dto.ReorderStateDTO{
		View:  string(e.view),
		Phase: string(e.phase),
		Lines: lines,
		Total: len(lines),
	}
}

// EnsureProposal calcula la propuesta sólo si aún no existe; no descarta ediciones en curso.
func (e *ReorderEngine) EnsureProposal(ctx context.Context) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.computed && e.view == ViewProposal {
		if err := e.computeLocked(ctx); err != nil {
			return e.snapshotLocked(), err
		}
	}
	return e.snapshotLocked(), nil
}

// ComputeProposal recalcula desde el inventario. Es un reinicio completo:
// los ajustes y eliminaciones del operador se pierden y la fase vuelve a edición.
func (e *ReorderEngine) ComputeProposal(ctx context.Context) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.computeLocked(ctx); err != nil {
		return e.snapshotLocked(), err
	}
	e.view = ViewProposal
	return e.snapshotLocked(), nil
}

func (e *ReorderEngine) computeLocked(ctx context.Context) error {
	items, err := e.itemRepo.List(ctx, "")
	if err != nil {
		return storeErr(err)
	}
	lines := make([]entity.ReorderLine, 0)
	for _, it := range items {
		if !it.BelowThreshold() {
			continue
		}
		lines = append(lines, entity.ReorderLine{
			ItemID:     it.ID,
			Name:       it.Name,
			SKU:        it.SKU,
			Warehouse:  it.Warehouse,
			ReorderQty: domaininv.ReorderQty(it),
		})
	}
	e.lines = lines
	e.phase = PhaseEditing
	e.computed = true
	return nil
}

// SwitchView cambia de vista. Ir a historia descarta las líneas; volver a propuesta recalcula.
func (e *ReorderEngine) SwitchView(ctx context.Context, view View) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch view {
	case ViewHistory:
		e.view = ViewHistory
		e.phase = PhaseEditing
		e.lines = nil
		e.computed = false
	case ViewProposal:
		e.view = ViewProposal
		if err := e.computeLocked(ctx); err != nil {
			return e.snapshotLocked(), err
		}
	default:
		return e.snapshotLocked(), fmt.Errorf("%w: vista %q", domain.ErrValidation, view)
	}
	return e.snapshotLocked(), nil
}

// AdjustQty suma delta a la cantidad de la línea sin bajar de 1.
func (e *ReorderEngine) AdjustQty(user *entity.AuthUser, itemID string, delta int) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireEditingLocked(user); err != nil {
		return e.snapshotLocked(), err
	}
	i := e.lineIndexLocked(itemID)
	if i < 0 {
		return e.snapshotLocked(), fmt.Errorf("%w: línea %s", domain.ErrNotFound, itemID)
	}
	e.lines[i].ReorderQty = domaininv.AdjustReorderQty(e.lines[i].ReorderQty, delta)
	return e.snapshotLocked(), nil
}

// RemoveLine quita una línea de la propuesta. El ítem de inventario no cambia.
func (e *ReorderEngine) RemoveLine(user *entity.AuthUser, itemID string) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireEditingLocked(user); err != nil {
		return e.snapshotLocked(), err
	}
	i := e.lineIndexLocked(itemID)
	if i < 0 {
		return e.snapshotLocked(), fmt.Errorf("%w: línea %s", domain.ErrNotFound, itemID)
	}
	e.lines = append(e.lines[:i:i], e.lines[i+1:]...)
	return e.snapshotLocked(), nil
}

// EnterReview pasa de edición a revisión. Una propuesta vacía no genera orden.
func (e *ReorderEngine) EnterReview(user *entity.AuthUser) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireEditingLocked(user); err != nil {
		return e.snapshotLocked(), err
	}
	if len(e.lines) == 0 {
		return e.snapshotLocked(), fmt.Errorf("%w: la propuesta está vacía", domain.ErrInvalidState)
	}
	e.phase = PhaseReviewing
	return e.snapshotLocked(), nil
}

// CancelReview vuelve de revisión a edición conservando las líneas.
func (e *ReorderEngine) CancelReview(user *entity.AuthUser) (dto.ReorderStateDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !user.CanMutate() {
		return e.snapshotLocked(), domain.ErrForbidden
	}
	if e.view != ViewProposal || e.phase != PhaseReviewing {
		return e.snapshotLocked(), fmt.Errorf("%w: no hay revisión en curso", domain.ErrInvalidState)
	}
	e.phase = PhaseEditing
	return e.snapshotLocked(), nil
}

// Confirm emite la orden de compra y la agrega a la historia.
// Si Append falla la fase vuelve a revisión con las líneas intactas y el error envuelve ErrPersistence.
// Si tiene éxito limpia la propuesta, pasa a la vista de historia y recalcula para el siguiente ciclo.
func (e *ReorderEngine) Confirm(ctx context.Context, user *entity.AuthUser) (*dto.PurchaseOrderDTO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !user.CanMutate() {
		return nil, domain.ErrForbidden
	}
	if e.view != ViewProposal || e.phase != PhaseReviewing {
		return nil, fmt.Errorf("%w: la orden sólo se confirma desde revisión", domain.ErrInvalidState)
	}
	e.phase = PhaseCommitting

	now := e.now()
	order := &entity.PurchaseOrder{
		ID:         fmt.Sprintf("PO-%d-%03d", now.Year(), 100+e.randN(900)),
		ItemsCount: len(e.lines),
		CreatedAt:  now,
		Status:     entity.PurchaseOrderSent,
		Items:      make([]entity.PurchaseOrderLine, 0, len(e.lines)),
	}
	for _, l := range e.lines {
		order.Items = append(order.Items, entity.PurchaseOrderLine{
			Name:      l.Name,
			SKU:       l.SKU,
			Qty:       l.ReorderQty,
			Warehouse: l.Warehouse,
		})
	}

	if err := e.orderRepo.Append(ctx, order); err != nil {
		e.phase = PhaseReviewing
		e.metrics.PurchaseOrderFailed()
		e.log.Error().Err(err).Str("order_id", order.ID).Str("user_id", user.ID).Msg("no se pudo guardar la orden de compra")
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	e.metrics.PurchaseOrderConfirmed(order.ItemsCount)
	e.log.Info().
		Str("order_id", order.ID).
		Int("items_count", order.ItemsCount).
		Str("user_id", user.ID).
		Msg("orden de compra confirmada")

	e.lines = nil
	e.view = ViewHistory
	if err := e.computeLocked(ctx); err != nil {
		e.computed = false
		e.phase = PhaseEditing
		e.log.Warn().Err(err).Msg("no se pudo recalcular la propuesta tras confirmar")
	}
	resp := ToPurchaseOrderDTO(order)
	return &resp, nil
}

// ProposalDocument arma el documento exportable de la propuesta viva.
func (e *ReorderEngine) ProposalDocument() dto.OrderDocument {
	e.mu.Lock()
	defer e.mu.Unlock()
	doc := dto.OrderDocument{
		Reference: ProposalReference,
		CreatedAt: e.now(),
		Status:    string(e.phase),
		Lines:     make([]dto.OrderDocumentLine, 0, len(e.lines)),
	}
	for _, l := range e.lines {
		doc.Lines = append(doc.Lines, dto.OrderDocumentLine{
			Product:   l.Name,
			SKU:       l.SKU,
			Warehouse: l.Warehouse.String(),
			Quantity:  l.ReorderQty,
		})
	}
	return doc
}

func (e *ReorderEngine) requireEditingLocked(user *entity.AuthUser) error {
	if !user.CanMutate() {
		return domain.ErrForbidden
	}
	if e.view != ViewProposal || e.phase != PhaseEditing {
		return fmt.Errorf("%w: la propuesta no está en edición", domain.ErrInvalidState)
	}
	return nil
}

func (e *ReorderEngine) lineIndexLocked(itemID string) int {
	for i, l := range e.lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}
