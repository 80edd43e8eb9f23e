package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	domaininv "github.com/jhoicas/magazzino-api/internal/domain/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

// ReconcilerState estado del conciliador de movimientos.
type ReconcilerState string

const (
	StateIdle     ReconcilerState = "idle"
	StateScanning ReconcilerState = "scanning"
	StateResolved ReconcilerState = "resolved"
	StateApplying ReconcilerState = "applying"
)

// Reconciler conciliador de movimientos de una sesión de operador:
// resuelve un SKU a un ítem, recoge bodega destino y cantidad, y aplica el delta firmado
// dentro de una transacción contra la cantidad autoritativa.
//
// La bodega destino se registra en el diario pero no cambia qué registro se modifica:
// siempre es el ítem resuelto.
type Reconciler struct {
	mu       sync.Mutex
	itemRepo repository.InventoryItemRepository
	tx       TxRunner
	metrics  ports.Metrics
	log      *logger.Logger
	now      func() time.Time

	state  ReconcilerState
	item   *entity.InventoryItem
	target entity.WarehouseName
	qty    int

	// estado al que vuelve un escaneo fallido (idle o resolved)
	beforeScan ReconcilerState
}

// NewReconciler construye un conciliador en estado idle.
func NewReconciler(itemRepo repository.InventoryItemRepository, tx TxRunner, metrics ports.Metrics, log *logger.Logger) *Reconciler {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{
		itemRepo:   itemRepo,
		tx:         tx,
		metrics:    metrics,
		log:        log.Component("movements"),
		now:        time.Now,
		state:      StateIdle,
		beforeScan: StateIdle,
		qty:        1,
	}
}

// Snapshot devuelve el estado actual.
func (r *Reconciler) Snapshot() dto.MovementStateDTO {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Reconciler) snapshotLocked() dto.MovementStateDTO {
	st := dto.MovementStateDTO{
		State:           string(r.state),
		TargetWarehouse: r.target.String(),
		Qty:             r.qty,
	}
	if r.item != nil {
		it := ToItemResponse(r.item)
		st.Item = &it
	}
	return st
}

// Scan adquiere el dispositivo de captura y espera un código.
// El mutex no se mantiene mientras ReadCode bloquea, así que Resolve manual sigue disponible;
// si otro camino resolvió antes, la lectura se descarta con ErrInvalidState.
// El dispositivo se libera siempre al salir, también con error.
func (r *Reconciler) Scan(ctx context.Context, dev ports.CaptureDevice) (dto.MovementStateDTO, error) {
	r.mu.Lock()
	if r.state == StateApplying {
		defer r.mu.Unlock()
		return r.snapshotLocked(), fmt.Errorf("%w: movimiento en aplicación", domain.ErrInvalidState)
	}
	if r.state != StateScanning {
		r.beforeScan = r.state
	}
	r.state = StateScanning
	r.mu.Unlock()

	if err := dev.Open(ctx); err != nil {
		r.leaveScanning()
		r.log.Warn().Err(err).Msg("no se pudo abrir el dispositivo de captura")
		return r.Snapshot(), fmt.Errorf("%w: %v", domain.ErrDevice, err)
	}
	defer func() {
		if err := dev.Close(); err != nil {
			r.log.Warn().Err(err).Msg("error al liberar el dispositivo de captura")
		}
	}()

	code, err := dev.ReadCode(ctx)
	if err != nil {
		r.leaveScanning()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return r.Snapshot(), err
		}
		return r.Snapshot(), fmt.Errorf("%w: %v", domain.ErrDevice, err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		r.leaveScanning()
		return r.Snapshot(), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateScanning {
		return r.snapshotLocked(), fmt.Errorf("%w: el escaneo ya no está activo", domain.ErrInvalidState)
	}
	if err := r.resolveLocked(ctx, code); err != nil {
		return r.snapshotLocked(), err
	}
	return r.snapshotLocked(), nil
}

func (r *Reconciler) leaveScanning() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveScanningLocked()
}

// leaveScanningLocked devuelve el conciliador al estado previo al escaneo, con su ítem intacto.
func (r *Reconciler) leaveScanningLocked() {
	if r.state != StateScanning {
		return
	}
	if r.beforeScan == StateResolved && r.item != nil {
		r.state = StateResolved
		return
	}
	r.resetLocked()
}

// Resolve busca el SKU sin distinguir mayúsculas en el inventario global.
// Con varias coincidencias gana la primera en orden de inserción.
func (r *Reconciler) Resolve(ctx context.Context, sku string) (dto.MovementStateDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateApplying {
		return r.snapshotLocked(), fmt.Errorf("%w: movimiento en aplicación", domain.ErrInvalidState)
	}
	if err := r.resolveLocked(ctx, sku); err != nil {
		return r.snapshotLocked(), err
	}
	return r.snapshotLocked(), nil
}

func (r *Reconciler) resolveLocked(ctx context.Context, sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return fmt.Errorf("%w: sku vacío", domain.ErrValidation)
	}
	items, err := r.itemRepo.List(ctx, "")
	if err != nil {
		return storeErr(err)
	}
	fold := cases.Fold()
	want := fold.String(sku)
	for _, it := range items {
		if fold.String(it.SKU) == want {
			r.item = it
			r.target = it.Warehouse
			r.qty = 1
			r.state = StateResolved
			return nil
		}
	}
	r.leaveScanningLocked()
	return fmt.Errorf("%w: sku %s", domain.ErrNotFound, sku)
}

// SetTargetWarehouse elige la bodega destino del movimiento.
func (r *Reconciler) SetTargetWarehouse(w entity.WarehouseName) (dto.MovementStateDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateResolved {
		return r.snapshotLocked(), fmt.Errorf("%w: no hay ítem resuelto", domain.ErrInvalidState)
	}
	if !w.Valid() {
		return r.snapshotLocked(), fmt.Errorf("%w: bodega desconocida %q", domain.ErrValidation, w)
	}
	r.target = w
	return r.snapshotLocked(), nil
}

// SetQty fija la cantidad a mover; valores menores que 1 quedan en 1.
func (r *Reconciler) SetQty(q int) (dto.MovementStateDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateResolved {
		return r.snapshotLocked(), fmt.Errorf("%w: no hay ítem resuelto", domain.ErrInvalidState)
	}
	r.qty = max(1, q)
	return r.snapshotLocked(), nil
}

// Apply aplica load (+qty) o unload (-qty) al ítem resuelto, recortando en 0.
// Lee la cantidad bajo bloqueo dentro de la transacción, la escribe y deja un registro en el diario.
// Si la escritura falla el conciliador sigue en resolved y el error envuelve ErrApply.
func (r *Reconciler) Apply(ctx context.Context, user *entity.AuthUser, direction string) (*dto.ItemResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !user.CanMutate() {
		return nil, domain.ErrForbidden
	}
	if r.state != StateResolved || r.item == nil {
		return nil, fmt.Errorf("%w: no hay ítem resuelto", domain.ErrInvalidState)
	}
	delta, ok := domaininv.MovementDelta(direction, r.qty)
	if !ok {
		return nil, fmt.Errorf("%w: dirección %q", domain.ErrValidation, direction)
	}

	r.state = StateApplying
	var updated *entity.InventoryItem
	var mov *entity.StockMovement
	err := r.tx.Run(ctx, func(itemRepo repository.InventoryItemRepository, movRepo repository.StockMovementRepository) error {
		cur, err := itemRepo.GetForUpdate(ctx, r.item.ID)
		if err != nil {
			return err
		}
		next := domaininv.ApplyDelta(cur.Quantity, delta)
		updated, err = itemRepo.SetQuantity(ctx, cur.ID, next)
		if err != nil {
			return err
		}
		mov = &entity.StockMovement{
			ID:              uuid.New().String(),
			ItemID:          cur.ID,
			SKU:             cur.SKU,
			Warehouse:       cur.Warehouse,
			TargetWarehouse: r.target,
			Direction:       direction,
			Qty:             r.qty,
			QuantityBefore:  cur.Quantity,
			QuantityAfter:   next,
			UserID:          user.ID,
			CreatedAt:       r.now(),
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		r.state = StateResolved
		r.metrics.MovementFailed(direction)
		r.log.Error().Err(err).
			Str("item_id", r.item.ID).
			Str("direction", direction).
			Str("user_id", user.ID).
			Msg("no se pudo aplicar el movimiento")
		return nil, fmt.Errorf("%w: %w", domain.ErrApply, err)
	}

	r.metrics.MovementApplied(direction, r.qty)
	r.log.Info().
		Str("movement_id", mov.ID).
		Str("item_id", mov.ItemID).
		Str("sku", mov.SKU).
		Str("direction", direction).
		Int("qty", mov.Qty).
		Int("quantity_before", mov.QuantityBefore).
		Int("quantity_after", mov.QuantityAfter).
		Str("user_id", user.ID).
		Msg("movimiento aplicado")

	r.resetLocked()
	resp := ToItemResponse(updated)
	return &resp, nil
}

// Restart descarta el ítem resuelto y vuelve a idle sin aplicar nada.
func (r *Reconciler) Restart() dto.MovementStateDTO {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
	return r.snapshotLocked()
}

func (r *Reconciler) resetLocked() {
	r.state = StateIdle
	r.beforeScan = StateIdle
	r.item = nil
	r.target = ""
	r.qty = 1
}
