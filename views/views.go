// Package views holds the page view models handed to the JSON renderer.
package views

import (
	"github.com/webshop-go/shop-api/forms"
	"github.com/webshop-go/shop-api/models"
)

// Sizes are the page sizes advertised to the client.
var Sizes = []int{4, 8, 12, 24}

type Pagination struct {
	Page        int   `json:"page"`
	Size        int   `json:"size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPagination computes page metadata for a total row count. The page is
// assumed to be clamped to [1, TotalPages] already.
func NewPagination(page, size int, total int64) Pagination {
	pages := int((total + int64(size) - 1) / int64(size))
	return Pagination{
		Page:        page,
		Size:        size,
		TotalItems:  total,
		TotalPages:  pages,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}
}

type ProductsPage struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
	Sizes      []int            `json:"sizes"`
	OrderBy    string           `json:"order_by"`
	MinPrice   float64          `json:"min_price"`
	MaxPrice   float64          `json:"max_price"`
	Name       string           `json:"name"`
	Error      string           `json:"error,omitempty"`
}

type IndexPage struct {
	Categories []models.Category  `json:"categories"`
	Form       forms.CategoryForm `json:"form"`
	Errors     forms.FieldErrors  `json:"errors,omitempty"`
}

type CategoryPage struct {
	Category models.Category           `json:"category"`
	Products []models.Product          `json:"products"`
	Form     forms.CategoryProductForm `json:"form"`
	Errors   forms.FieldErrors         `json:"errors,omitempty"`
}

type EditProductPage struct {
	Product    models.Product    `json:"product"`
	Form       forms.ProductForm `json:"form"`
	Categories []models.Category `json:"categories"`
	Errors     forms.FieldErrors `json:"errors,omitempty"`
}

type BasketPage struct {
	Items []models.BasketItem `json:"items"`
	Total float64             `json:"total"`
}

// NewBasketPage sums line totals (price * amount) over the caller's items.
func NewBasketPage(items []models.BasketItem) BasketPage {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Amount)
	}
	if items == nil {
		items = []models.BasketItem{}
	}
	return BasketPage{Items: items, Total: total}
}
