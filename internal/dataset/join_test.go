package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ferreteria.lasu.pe/internal/flatfile"
)

func TestResolveMatchesAfterStringCoercion(t *testing.T) {
	districts := []flatfile.Row{
		{"idDistr": int64(1), "nomDistr": "Cercado de Lima"},
		{"idDistr": "2", "nomDistr": "La Victoria"},
	}

	// An int64 key matches a string id and vice versa.
	assert.Equal(t, "Cercado de Lima", Resolve("1", districts, "idDistr", "nomDistr", "Sin Distrito"))
	assert.Equal(t, "La Victoria", Resolve(int64(2), districts, "idDistr", "nomDistr", "Sin Distrito"))
	assert.Equal(t, "La Victoria", Resolve(2.0, districts, "idDistr", "nomDistr", "Sin Distrito"))
}

func TestResolveFallsBackToLiteral(t *testing.T) {
	districts := []flatfile.Row{
		{"idDistr": "1", "nomDistr": "Cercado de Lima"},
	}

	assert.Equal(t, "Sin Distrito", Resolve("99", districts, "idDistr", "nomDistr", "Sin Distrito"))
	assert.Equal(t, "Sin Distrito", Resolve(nil, districts, "idDistr", "nomDistr", "Sin Distrito"))
	assert.Equal(t, "Sin Distrito", Resolve("1", nil, "idDistr", "nomDistr", "Sin Distrito"))
}

func TestResolveFallsBackWhenDisplayFieldEmpty(t *testing.T) {
	districts := []flatfile.Row{
		{"idDistr": "1", "nomDistr": ""},
	}
	assert.Equal(t, "Sin Distrito", Resolve("1", districts, "idDistr", "nomDistr", "Sin Distrito"))
}
