package catalogcontroller_test

import (
	"fmt"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop-go/shop-api/views"
)

func TestListProductsDefaults(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, category.ID, "Widget", 10, 5)
	seedProduct(t, db, category.ID, "Anvil", 99.5, 1)

	w := doGET(t, r, "/products")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)

	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 12, page.Pagination.Size)
	assert.Equal(t, int64(2), page.Pagination.TotalItems)
	assert.Equal(t, "name", page.OrderBy)
	assert.Equal(t, 0.0, page.MinPrice)
	assert.Equal(t, 99.5, page.MaxPrice, "price ceiling defaults to the most expensive product")
	assert.Equal(t, []int{4, 8, 12, 24}, page.Sizes)

	// Default ordering is by name ascending.
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Anvil", page.Products[0].Name)
	assert.Equal(t, "Widget", page.Products[1].Name)
}

func TestListProductsEmptyCatalog(t *testing.T) {
	r, _ := setupTest(t)

	w := doGET(t, r, "/products")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)
	assert.Empty(t, page.Products)
	assert.Equal(t, 0.0, page.MaxPrice)
	assert.Equal(t, int64(0), page.Pagination.TotalItems)
}

func TestListProductsPriceAndNameFilter(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, category.ID, "Widget", 10, 5)
	seedProduct(t, db, category.ID, "Widget Pro", 30, 5)
	seedProduct(t, db, category.ID, "Gadget", 15, 5)

	w := doGET(t, r, "/products?min_price=5&max_price=20&name=Widget&order_by=price")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "Widget", page.Products[0].Name)
	for _, p := range page.Products {
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.LessOrEqual(t, p.Price, 20.0)
		assert.Contains(t, p.Name, "Widget")
	}
}

func TestListProductsBoundsInclusive(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, category.ID, "Low", 5, 1)
	seedProduct(t, db, category.ID, "High", 20, 1)

	w := doGET(t, r, "/products?min_price=5&max_price=20")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)
	assert.Len(t, page.Products, 2)
}

func TestListProductsOrdering(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, category.ID, "Bravo", 20, 1)
	seedProduct(t, db, category.ID, "Alpha", 30, 1)
	seedProduct(t, db, category.ID, "Charlie", 10, 1)

	tests := []struct {
		orderBy string
		check   func(t *testing.T, page views.ProductsPage)
	}{
		{"name", func(t *testing.T, page views.ProductsPage) {
			assert.True(t, sort.SliceIsSorted(page.Products, func(i, j int) bool {
				return page.Products[i].Name < page.Products[j].Name
			}))
		}},
		{"-name", func(t *testing.T, page views.ProductsPage) {
			assert.True(t, sort.SliceIsSorted(page.Products, func(i, j int) bool {
				return page.Products[i].Name > page.Products[j].Name
			}))
		}},
		{"price", func(t *testing.T, page views.ProductsPage) {
			assert.True(t, sort.SliceIsSorted(page.Products, func(i, j int) bool {
				return page.Products[i].Price < page.Products[j].Price
			}))
		}},
		{"-price", func(t *testing.T, page views.ProductsPage) {
			assert.True(t, sort.SliceIsSorted(page.Products, func(i, j int) bool {
				return page.Products[i].Price > page.Products[j].Price
			}))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			w := doGET(t, r, "/products?order_by="+tt.orderBy)
			require.Equal(t, http.StatusOK, w.Code)

			var page views.ProductsPage
			decode(t, w, &page)
			require.Len(t, page.Products, 3)
			tt.check(t, page)
		})
	}
}

func TestListProductsUnknownOrderingFallsBack(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, category.ID, "Bravo", 20, 1)
	seedProduct(t, db, category.ID, "Alpha", 30, 1)

	w := doGET(t, r, "/products?order_by=created_at")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)
	assert.Equal(t, "name", page.OrderBy)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Alpha", page.Products[0].Name)
}

func TestListProductsPaginationCoversAllRows(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	want := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("Product %02d", i)
		seedProduct(t, db, category.ID, name, float64(i+1), 1)
		want = append(want, name)
	}

	var got []string
	for pageNum := 1; pageNum <= 3; pageNum++ {
		w := doGET(t, r, fmt.Sprintf("/products?size=4&page=%d", pageNum))
		require.Equal(t, http.StatusOK, w.Code)

		var page views.ProductsPage
		decode(t, w, &page)
		assert.Equal(t, pageNum, page.Pagination.Page)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.Equal(t, pageNum > 1, page.Pagination.HasPrevious)
		assert.Equal(t, pageNum < 3, page.Pagination.HasNext)
		for _, p := range page.Products {
			got = append(got, p.Name)
		}
	}

	// Concatenated pages reproduce the sorted set exactly once each.
	assert.Equal(t, want, got)
}

func TestListProductsPageClamping(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	for i := 0; i < 6; i++ {
		seedProduct(t, db, category.ID, fmt.Sprintf("P%d", i), 1, 1)
	}

	w := doGET(t, r, "/products?size=4&page=99")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Len(t, page.Products, 2)

	w = doGET(t, r, "/products?page=notanumber")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &page)
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestListProductsRejectsMalformedPrices(t *testing.T) {
	r, db := setupTest(t)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, category.ID, "Widget", 10, 1)

	w := doGET(t, r, "/products?min_price=cheap")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGET(t, r, "/products?max_price=expensive")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductsEchoesErrorNotice(t *testing.T) {
	r, _ := setupTest(t)

	w := doGET(t, r, "/products?error=could+not+delete+product+since+it+does+not+exist")
	require.Equal(t, http.StatusOK, w.Code)

	var page views.ProductsPage
	decode(t, w, &page)
	assert.Equal(t, "could not delete product since it does not exist", page.Error)
}
