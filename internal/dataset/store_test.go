package dataset

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreteria.lasu.pe/internal/flatfile"
)

func newTestStore(t *testing.T, spec ResourceSpec, rows []flatfile.Row) *Store {
	t.Helper()
	if spec.PageSize == 0 {
		spec.PageSize = defaultPageSize
	}
	if spec.Insert == "" {
		spec.Insert = "prepend"
	}
	store := newStore(spec)
	store.populate(rows)
	return store
}

func clientSpec() ResourceSpec {
	return ResourceSpec{
		Name:     "clients",
		Source:   "cliente.csv",
		Format:   "csv",
		IDField:  "idCliente",
		Required: []string{"nomCliente"},
	}
}

func TestPopulateSortsNewestFirstByNumericIDPart(t *testing.T) {
	store := newTestStore(t, clientSpec(), []flatfile.Row{
		{"idCliente": "C002", "nomCliente": "Segundo"},
		{"idCliente": "C010", "nomCliente": "Décimo"},
		{"idCliente": int64(3), "nomCliente": "Tercero"},
	})

	rows := store.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "C010", flatfile.String(rows[0]["idCliente"]))
	assert.Equal(t, "3", flatfile.String(rows[1]["idCliente"]))
	assert.Equal(t, "C002", flatfile.String(rows[2]["idCliente"]))
}

func TestCreatePrependsAndAssignsSyntheticID(t *testing.T) {
	store := newTestStore(t, clientSpec(), []flatfile.Row{
		{"idCliente": "C002", "nomCliente": "Existente"},
	})

	row, err := store.Create(flatfile.Row{"nomCliente": "Nuevo Cliente"})
	require.NoError(t, err)

	// The counter seeds at 1001 when no loaded id exceeds it.
	assert.Equal(t, "1001", flatfile.String(row["idCliente"]))
	rows := store.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Nuevo Cliente", rows[0]["nomCliente"])
}

func TestCreateAppendsWhenConfigured(t *testing.T) {
	spec := clientSpec()
	spec.Insert = "append"
	store := newTestStore(t, spec, []flatfile.Row{
		{"idCliente": "C002", "nomCliente": "Existente"},
	})

	_, err := store.Create(flatfile.Row{"nomCliente": "Al Final"})
	require.NoError(t, err)
	rows := store.Rows()
	assert.Equal(t, "Al Final", rows[1]["nomCliente"])
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	store := newTestStore(t, clientSpec(), nil)

	_, err := store.Create(flatfile.Row{"rucCliente": "20456789012"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "nomCliente")
	assert.Equal(t, 0, store.Len())
}

func TestSyntheticIDsStayDistinctAcrossDeleteAndRecreate(t *testing.T) {
	spec := ResourceSpec{Name: "sales", Source: "venta.csv", Format: "csv", IDField: "idVenta", IDPrefix: "VENTA"}
	store := newTestStore(t, spec, []flatfile.Row{
		{"idVenta": "VENTA-1200", "Total": 50.0},
	})

	first, err := store.Create(flatfile.Row{"Total": 10.0})
	require.NoError(t, err)
	assert.Equal(t, "VENTA-1201", flatfile.String(first["idVenta"]))

	require.NoError(t, store.Delete("VENTA-1201", true))

	second, err := store.Create(flatfile.Row{"Total": 20.0})
	require.NoError(t, err)
	assert.Equal(t, "VENTA-1202", flatfile.String(second["idVenta"]))
}

func TestUpdatePreservesPositionAndID(t *testing.T) {
	store := newTestStore(t, clientSpec(), []flatfile.Row{
		{"idCliente": "C003", "nomCliente": "Tercero"},
		{"idCliente": "C002", "nomCliente": "Segundo"},
		{"idCliente": "C001", "nomCliente": "Primero"},
	})

	row, err := store.Update("C002", flatfile.Row{"idCliente": "HACK", "nomCliente": "Renombrado"})
	require.NoError(t, err)
	assert.Equal(t, "C002", flatfile.String(row["idCliente"]))

	rows := store.Rows()
	assert.Equal(t, "Renombrado", rows[1]["nomCliente"])
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	store := newTestStore(t, clientSpec(), []flatfile.Row{
		{"idCliente": "C001", "nomCliente": "Primero"},
	})

	_, err := store.Update("C999", flatfile.Row{"nomCliente": "Nadie"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	store := newTestStore(t, clientSpec(), []flatfile.Row{
		{"idCliente": "C001", "nomCliente": "Primero"},
	})

	err := store.Delete("C001", false)
	assert.True(t, errors.Is(err, ErrNotConfirmed))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete("C001", true))
	assert.Equal(t, 0, store.Len())
}

func TestDeleteLastRowOnPageStepsBack(t *testing.T) {
	spec := clientSpec()
	spec.PageSize = 2
	rows := make([]flatfile.Row, 5)
	for i := range rows {
		rows[i] = flatfile.Row{"idCliente": fmt.Sprintf("C%03d", i+1), "nomCliente": "Cliente"}
	}
	store := newTestStore(t, spec, rows)

	require.NoError(t, store.SetPage(3))

	// Page 3 holds exactly one row; removing it lands the view on page 2.
	require.NoError(t, store.Delete("C001", true))
	assert.Equal(t, 2, store.Page())

	// Deleting from a full page leaves the page where it is.
	require.NoError(t, store.Delete("C004", true))
	assert.Equal(t, 2, store.Page())
}

func TestSetPageRejectsOutOfRange(t *testing.T) {
	spec := clientSpec()
	spec.PageSize = 2
	store := newTestStore(t, spec, []flatfile.Row{
		{"idCliente": "C001", "nomCliente": "Primero"},
		{"idCliente": "C002", "nomCliente": "Segundo"},
		{"idCliente": "C003", "nomCliente": "Tercero"},
	})

	assert.Error(t, store.SetPage(0))
	assert.Error(t, store.SetPage(3))
	assert.NoError(t, store.SetPage(2))
}

func TestCurrentPage(t *testing.T) {
	spec := clientSpec()
	spec.PageSize = 2
	store := newTestStore(t, spec, []flatfile.Row{
		{"idCliente": "C003", "nomCliente": "Tercero"},
		{"idCliente": "C002", "nomCliente": "Segundo"},
		{"idCliente": "C001", "nomCliente": "Primero"},
	})

	rows, page, totalPages := store.CurrentPage()
	assert.Equal(t, 1, page)
	assert.Equal(t, 2, totalPages)
	require.Len(t, rows, 2)
	assert.Equal(t, "C003", flatfile.String(rows[0]["idCliente"]))
}

func TestDeleteMatchingRemovesAllMatches(t *testing.T) {
	spec := ResourceSpec{Name: "sale-lines", Source: "detalle_venta.csv", Format: "csv", IDField: "idDetalle", Insert: "append"}
	store := newTestStore(t, spec, []flatfile.Row{
		{"idVenta": "VENTA-201", "idProduc": "P001"},
		{"idVenta": "VENTA-202", "idProduc": "P002"},
		{"idVenta": "VENTA-201", "idProduc": "P003"},
	})

	removed := store.DeleteMatching(func(row flatfile.Row) bool {
		return flatfile.String(row["idVenta"]) == "VENTA-201"
	})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())
}

func TestPopulateAfterCloseIsDiscarded(t *testing.T) {
	store := newStore(clientSpec())
	store.Close()
	store.populate([]flatfile.Row{{"idCliente": "C001", "nomCliente": "Tardío"}})
	assert.Equal(t, 0, store.Len())
}

func TestRowsReturnsCopies(t *testing.T) {
	store := newTestStore(t, clientSpec(), []flatfile.Row{
		{"idCliente": "C001", "nomCliente": "Primero"},
	})

	rows := store.Rows()
	rows[0]["nomCliente"] = "Mutado"

	fresh, ok := store.Get("C001")
	require.True(t, ok)
	assert.Equal(t, "Primero", fresh["nomCliente"])
}
