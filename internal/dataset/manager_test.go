package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreteria.lasu.pe/internal/flatfile"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := InitManager(filepath.Join("..", "..", "testdata"), filepath.Join("..", "..", "testdata", "catalog.yaml"), nil)
	require.NoError(t, err)
	return manager
}

func TestInitManagerLoadsEveryCatalogResource(t *testing.T) {
	manager := newTestManager(t)

	for _, name := range manager.ResourceNames() {
		store, ok := manager.Store(name)
		require.True(t, ok, "missing store for %s", name)
		assert.NotNil(t, store)
	}

	clients, _ := manager.Store(ResourceClients)
	assert.Equal(t, 5, clients.Len())
	products, _ := manager.Store(ResourceProducts)
	assert.Equal(t, 8, products.Len())
}

func TestLoadResolvesJoinsIntoDisplayFields(t *testing.T) {
	manager := newTestManager(t)

	clients, _ := manager.Store(ResourceClients)
	client, ok := clients.Get("C001")
	require.True(t, ok)
	assert.Equal(t, "La Victoria", client["nomDistr"])

	sales, _ := manager.Store(ResourceSales)
	sale, ok := sales.Get("VENTA-201")
	require.True(t, ok)
	assert.Equal(t, "Comercial Rivera SAC", sale["nombreCliente"])
	assert.Equal(t, "Efectivo", sale["nombreMetodo"])

	// Payments chain through the sale to reach the client name, and that
	// works because sales are enriched before payments in catalog order.
	payments, _ := manager.Store(ResourcePayments)
	payment, ok := payments.Get("PAGO-301")
	require.True(t, ok)
	assert.Equal(t, "Constructora Andina EIRL", payment["nombreCliente"])

	vendors, _ := manager.Store(ResourceVendors)
	vendor, ok := vendors.Get("V001")
	require.True(t, ok)
	assert.Equal(t, "Cercado de Lima", vendor["nomDistr"])

	// V003 points at a district that no longer exists.
	orphanVendor, ok := vendors.Get("V003")
	require.True(t, ok)
	assert.Equal(t, "Sin Distrito", orphanVendor["nomDistr"])
}

func TestCreateRowResolvesJoinsAndFallsBack(t *testing.T) {
	manager := newTestManager(t)

	row, err := manager.CreateRow(ResourceSales, flatfile.Row{
		"idCliente":    "C003",
		"Fecha_Venta":  "2025-08-25",
		"Total":        100.0,
		"tipoVenta":    "Contado",
		"idMetodoPago": "MP-INEXISTENTE",
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez Gamarra", row["nombreCliente"])
	assert.Equal(t, "Desconocido", row["nombreMetodo"])

	orphan, err := manager.CreateRow(ResourceSales, flatfile.Row{
		"idCliente": "C999",
		"Total":     5.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cliente Desconocido", orphan["nombreCliente"])
}

func TestCreateRowIgnoresSubmittedID(t *testing.T) {
	manager := newTestManager(t)

	row, err := manager.CreateRow(ResourceClients, flatfile.Row{
		"idCliente":  "C001",
		"nomCliente": "Impostor",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "C001", flatfile.String(row["idCliente"]))
}

func TestInlineDisplayNameWinsOverJoin(t *testing.T) {
	manager := newTestManager(t)

	row, err := manager.CreateRow(ResourceSales, flatfile.Row{
		"idCliente":     "C001",
		"nombreCliente": "Nombre Manual",
		"Total":         10.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nombre Manual", row["nombreCliente"])
}

func TestDeleteRowCascadeGate(t *testing.T) {
	manager := newTestManager(t)

	err := manager.DeleteRow(ResourceClients, "C005", false)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	err = manager.DeleteRow(ResourceClients, "C005", true)
	assert.NoError(t, err)

	clients, _ := manager.Store(ResourceClients)
	assert.Equal(t, 4, clients.Len())
}

func TestUnknownResource(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.CreateRow("no-such-resource", flatfile.Row{})
	assert.ErrorIs(t, err, ErrUnknownResource)

	_, ok := manager.Store("no-such-resource")
	assert.False(t, ok)
}

func TestShutdownDiscardsLateLoads(t *testing.T) {
	manager := newTestManager(t)
	manager.Shutdown()

	store, _ := manager.Store(ResourceClients)
	store.populate([]flatfile.Row{{"idCliente": "C100", "nomCliente": "Tardío"}})
	assert.NotEqual(t, 1, store.Len())
}

func TestLoadCatalogValidation(t *testing.T) {
	_, err := LoadCatalog(filepath.Join("..", "..", "testdata", "no-such-catalog.yaml"))
	assert.Error(t, err)

	catalog, err := LoadCatalog(filepath.Join("..", "..", "testdata", "catalog.yaml"))
	require.NoError(t, err)

	spec, ok := catalog.Spec(ResourceSales)
	require.True(t, ok)
	assert.Equal(t, "idVenta", spec.IDField)
	assert.Equal(t, "VENTA", spec.IDPrefix)
	assert.Equal(t, defaultPageSize, spec.PageSize)
	assert.Equal(t, "prepend", spec.Insert)

	lines, ok := catalog.Spec(ResourceSaleLines)
	require.True(t, ok)
	assert.Equal(t, "append", lines.Insert)
}

func TestLoadCatalogRejectsSelfJoin(t *testing.T) {
	// A resource joining itself would deadlock the loader, which enriches
	// under the owning store's write lock.
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `resources:
  - name: clients
    source: cliente.csv
    format: csv
    id_field: idCliente
    joins:
      - field: idCliente
        resource: clients
        display: nomCliente
        as: nombreCliente
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "joins itself")
}
