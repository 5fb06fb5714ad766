package catalogcontroller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestExportProducts(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	product := seedProduct(t, db, category.ID, "Hammer", 12.5, 4)

	w := doGET(t, r, "/products/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=products.xlsx", w.Header().Get("Content-Disposition"))

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 2, "header row plus one product")

	header := sheet.Rows[0]
	require.True(t, len(header.Cells) >= 7)
	assert.Equal(t, "ID", header.Cells[0].Value)
	assert.Equal(t, "Name", header.Cells[1].Value)
	assert.Equal(t, "Price", header.Cells[2].Value)
	assert.Equal(t, "Category", header.Cells[6].Value)

	row := sheet.Rows[1]
	require.True(t, len(row.Cells) >= 7)
	assert.Equal(t, fmt.Sprint(product.ID), row.Cells[0].Value)
	assert.Equal(t, "Hammer", row.Cells[1].Value)
	assert.Equal(t, "12.5", row.Cells[2].Value)
	assert.Equal(t, "Tools", row.Cells[6].Value, "category id resolved to its name")
}

func TestExportProductsEmptyCatalog(t *testing.T) {
	r, _ := setupTest(t)

	w := doGET(t, r, "/products/export")
	require.Equal(t, http.StatusOK, w.Code)

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Len(t, file.Sheets[0].Rows, 1, "header row only")
}
