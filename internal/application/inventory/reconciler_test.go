package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
)

type reconcilerFixture struct {
	items *memory.InventoryItemRepo
	movs  *memory.StockMovementRepo
	rec   *inventory.Reconciler
}

func newReconciler(t *testing.T, items ...*entity.InventoryItem) reconcilerFixture {
	t.Helper()
	itemRepo := memory.NewInventoryItemRepository(items...)
	movs := memory.NewStockMovementRepository()
	rec := inventory.NewReconciler(itemRepo, memory.NewTxRunner(itemRepo, movs), nil, nil)
	return reconcilerFixture{items: itemRepo, movs: movs, rec: rec}
}

func (f reconcilerFixture) quantity(t *testing.T, id string) int {
	t.Helper()
	it, err := f.items.GetByID(context.Background(), id)
	require.NoError(t, err)
	return it.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de SKU
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SinDistinguirMayusculas(t *testing.T) {
	f := newReconciler(t, item("a", "DRL-001", entity.WarehouseLeonardo, 45, nil))

	st, err := f.rec.Resolve(context.Background(), "drl-001")
	require.NoError(t, err)
	assert.Equal(t, string(inventory.StateResolved), st.State)
	require.NotNil(t, st.Item)
	assert.Equal(t, "a", st.Item.ID)
	assert.Equal(t, "Leonardo", st.TargetWarehouse)
	assert.Equal(t, 1, st.Qty)
}

func TestResolve_PrimeraCoincidenciaEnOrden(t *testing.T) {
	f := newReconciler(t,
		item("a", "DRL-001", entity.WarehousePrincipale, 45, nil),
		item("b", "DRL-001", entity.WarehouseNicola, 45, nil),
	)
	st, err := f.rec.Resolve(context.Background(), "DRL-001")
	require.NoError(t, err)
	assert.Equal(t, "a", st.Item.ID)
}

func TestResolve_NoEncontrado(t *testing.T) {
	f := newReconciler(t, item("a", "DRL-001", entity.WarehouseMarco, 45, nil))

	st, err := f.rec.Resolve(context.Background(), "XXX")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, string(inventory.StateIdle), st.State)

	_, err = f.rec.Resolve(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetQtyYDestino(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))

	_, err := f.rec.SetQty(3)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.rec.Resolve(context.Background(), "a")
	require.NoError(t, err)

	st, err := f.rec.SetQty(0)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Qty)
	st, err = f.rec.SetQty(4)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Qty)

	_, err = f.rec.SetTargetWarehouse("Milano")
	assert.ErrorIs(t, err, domain.ErrValidation)
	st, err = f.rec.SetTargetWarehouse(entity.WarehouseMirko)
	require.NoError(t, err)
	assert.Equal(t, "Mirko", st.TargetWarehouse)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_DescargaRecortaEnCero(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 3, nil))
	ctx := context.Background()
	_, _ = f.rec.Resolve(ctx, "A")
	_, _ = f.rec.SetQty(10)

	got, err := f.rec.Apply(ctx, operator, entity.MovementUnload)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, 0, f.quantity(t, "a"))
	assert.Equal(t, string(inventory.StateIdle), f.rec.Snapshot().State)
}

func TestApply_CargaSuma(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()
	_, _ = f.rec.Resolve(ctx, "A")
	_, _ = f.rec.SetTargetWarehouse(entity.WarehouseNicola)
	_, _ = f.rec.SetQty(7)

	got, err := f.rec.Apply(ctx, admin, entity.MovementLoad)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)
	assert.Equal(t, "Marco", got.Warehouse, "se modifica el registro resuelto")

	movs, err := f.movs.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, 5, movs[0].QuantityBefore)
	assert.Equal(t, 12, movs[0].QuantityAfter)
	assert.Equal(t, entity.WarehouseNicola, movs[0].TargetWarehouse)
	assert.Equal(t, admin.ID, movs[0].UserID)
}

func TestApply_UsaCantidadAutoritativa(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()
	_, _ = f.rec.Resolve(ctx, "A")

	// Otro operador cambió la cantidad después de la resolución.
	_, err := f.items.SetQuantity(ctx, "a", 20)
	require.NoError(t, err)

	got, err := f.rec.Apply(ctx, operator, entity.MovementUnload)
	require.NoError(t, err)
	assert.Equal(t, 19, got.Quantity)
}

func TestApply_ViewerRechazado(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()
	_, _ = f.rec.Resolve(ctx, "A")

	_, err := f.rec.Apply(ctx, viewer, entity.MovementUnload)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 5, f.quantity(t, "a"))
	movs, _ := f.movs.ListRecent(ctx, 10)
	assert.Empty(t, movs)

	_, err = f.rec.Apply(ctx, nil, entity.MovementLoad)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApply_DireccionInvalidaYSinResolver(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()

	_, err := f.rec.Apply(ctx, admin, entity.MovementLoad)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, _ = f.rec.Resolve(ctx, "A")
	_, err = f.rec.Apply(ctx, admin, "sideways")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApply_FallaAlmacenQuedaResuelto(t *testing.T) {
	items := memory.NewInventoryItemRepository(item("a", "A", entity.WarehouseMarco, 5, nil))
	movs := memory.NewStockMovementRepository()
	rec := inventory.NewReconciler(items, &failingTxRunner{items: items, movs: movs}, nil, nil)
	ctx := context.Background()
	_, _ = rec.Resolve(ctx, "A")

	_, err := rec.Apply(ctx, admin, entity.MovementLoad)
	assert.ErrorIs(t, err, domain.ErrApply)
	assert.ErrorIs(t, err, errStoreDown)

	st := rec.Snapshot()
	assert.Equal(t, string(inventory.StateResolved), st.State)
	assert.Equal(t, "a", st.Item.ID)
}

func TestApply_ItemBorradoTrasResolver(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()
	_, _ = f.rec.Resolve(ctx, "A")
	require.NoError(t, f.items.Delete(ctx, "a"))

	_, err := f.rec.Apply(ctx, admin, entity.MovementLoad)
	assert.ErrorIs(t, err, domain.ErrApply)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestart(t *testing.T) {
	f := newReconciler(t, item("a", "A", entity.WarehouseMarco, 5, nil))
	_, _ = f.rec.Resolve(context.Background(), "A")
	_, _ = f.rec.SetQty(9)

	st := f.rec.Restart()
	assert.Equal(t, string(inventory.StateIdle), st.State)
	assert.Nil(t, st.Item)
	assert.Equal(t, 1, st.Qty)
	assert.Equal(t, 5, f.quantity(t, "a"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Captura
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_ResuelveYLiberaDispositivo(t *testing.T) {
	f := newReconciler(t, item("a", "SAF-012", entity.WarehouseMarco, 5, nil))
	dev := &fakeDevice{code: "saf-012"}

	st, err := f.rec.Scan(context.Background(), dev)
	require.NoError(t, err)
	assert.Equal(t, string(inventory.StateResolved), st.State)
	assert.True(t, dev.closed)
}

func TestScan_DispositivoNoDisponible(t *testing.T) {
	f := newReconciler(t, item("a", "SAF-012", entity.WarehouseMarco, 5, nil))
	dev := &fakeDevice{openErr: errors.New("sin cámara")}

	st, err := f.rec.Scan(context.Background(), dev)
	assert.ErrorIs(t, err, domain.ErrDevice)
	assert.Equal(t, string(inventory.StateIdle), st.State)

	_, err = f.rec.Resolve(context.Background(), "SAF-012")
	assert.NoError(t, err, "la entrada manual sigue disponible")
}

func TestScan_FalloConservaItemResuelto(t *testing.T) {
	f := newReconciler(t, item("a", "SAF-012", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()
	_, err := f.rec.Resolve(ctx, "SAF-012")
	require.NoError(t, err)
	_, err = f.rec.SetQty(2)
	require.NoError(t, err)

	st, err := f.rec.Scan(ctx, &fakeDevice{openErr: errors.New("sin cámara")})
	assert.ErrorIs(t, err, domain.ErrDevice)
	assert.Equal(t, string(inventory.StateResolved), st.State)
	require.NotNil(t, st.Item)
	assert.Equal(t, "a", st.Item.ID)
	assert.Equal(t, 2, st.Qty)

	dev := &fakeDevice{code: "XXX-000"}
	st, err = f.rec.Scan(ctx, dev)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, string(inventory.StateResolved), st.State)
	assert.True(t, dev.closed)

	out, err := f.rec.Apply(ctx, operator, entity.MovementUnload)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Quantity)
}

func TestScan_FalloDesdeIdleLimpiaEstado(t *testing.T) {
	f := newReconciler(t)

	st, err := f.rec.Scan(context.Background(), &fakeDevice{code: "XXX-000"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, string(inventory.StateIdle), st.State)
	assert.Nil(t, st.Item)
}

func TestScan_ErrorDeLecturaLibera(t *testing.T) {
	f := newReconciler(t)
	dev := &fakeDevice{readErr: errors.New("lente sucia")}

	st, err := f.rec.Scan(context.Background(), dev)
	assert.ErrorIs(t, err, domain.ErrDevice)
	assert.Equal(t, string(inventory.StateIdle), st.State)
	assert.True(t, dev.closed)
}

func TestScan_EntradaManualMientrasEscanea(t *testing.T) {
	f := newReconciler(t, item("a", "SAF-012", entity.WarehouseMarco, 5, nil))
	dev := &fakeDevice{code: "SAF-012", block: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := f.rec.Scan(context.Background(), dev)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return f.rec.Snapshot().State == string(inventory.StateScanning)
	}, time.Second, 5*time.Millisecond)

	st, err := f.rec.Resolve(context.Background(), "saf-012")
	require.NoError(t, err)
	assert.Equal(t, string(inventory.StateResolved), st.State)

	close(dev.block)
	assert.ErrorIs(t, <-done, domain.ErrInvalidState)
	assert.True(t, dev.closed)
}

func TestScan_Cancelado(t *testing.T) {
	f := newReconciler(t)
	dev := &fakeDevice{block: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := f.rec.Scan(ctx, dev)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, string(inventory.StateIdle), st.State)
	assert.True(t, dev.closed)
}
