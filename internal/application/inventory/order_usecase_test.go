package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
)

func TestOrderUseCase_ListYExport(t *testing.T) {
	orders := memory.NewPurchaseOrderRepository(memory.DemoPurchaseOrders(fixedNow)...)
	uc := inventory.NewOrderUseCase(orders, fakeExporter{})
	ctx := context.Background()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	id := list.Items[0].ID

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	file, err := uc.Export(ctx, id, "TXT")
	require.NoError(t, err)
	assert.Equal(t, id+".txt", file.Filename)
	assert.Equal(t, "text/plain", file.ContentType)
	assert.Contains(t, string(file.Body), id)

	_, err = uc.Export(ctx, id, "docx")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Export(ctx, "PO-1999-999", "txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUseCase_ExportPropuesta(t *testing.T) {
	e, _ := newEngine(t, item("a", "OIL-442", entity.WarehouseMarco, 8, entity.IntPtr(10)))
	_, _ = e.ComputeProposal(context.Background())
	uc := inventory.NewOrderUseCase(memory.NewPurchaseOrderRepository(), fakeExporter{})

	file, err := uc.ExportDocument(context.Background(), e.ProposalDocument(), "txt")
	require.NoError(t, err)
	assert.Equal(t, "PROPOSAL.txt", file.Filename)
	assert.Equal(t, "PROPOSAL,OIL-442", string(file.Body))
}

func TestJournalUseCase_Recent(t *testing.T) {
	movs := memory.NewStockMovementRepository()
	ctx := context.Background()
	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, movs.Create(ctx, &entity.StockMovement{ID: id, Direction: entity.MovementLoad}))
	}
	uc := inventory.NewJournalUseCase(movs)

	got, err := uc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m3", got[0].ID)

	got, err = uc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSessions_UnaInstanciaPorUsuario(t *testing.T) {
	items := memory.NewInventoryItemRepository()
	movs := memory.NewStockMovementRepository()
	s := inventory.NewSessions(
		func() *inventory.ReorderEngine {
			return inventory.NewReorderEngine(items, memory.NewPurchaseOrderRepository(), nil, nil)
		},
		func() *inventory.Reconciler {
			return inventory.NewReconciler(items, memory.NewTxRunner(items, movs), nil, nil)
		},
	)

	assert.Same(t, s.Engine("u1"), s.Engine("u1"))
	assert.NotSame(t, s.Engine("u1"), s.Engine("u2"))
	assert.Same(t, s.Reconciler("u1"), s.Reconciler("u1"))
	assert.NotSame(t, s.Reconciler("u1"), s.Reconciler("u2"))
}
