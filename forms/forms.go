// Package forms holds the typed input structs behind the catalog pages.
// Numeric fields stay raw strings so a blank submission is distinguishable
// from a zero; validation returns an explicit field-error map instead of
// failing the request inside the persistence call.
package forms

import (
	"strconv"
	"strings"
)

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

// CategoryForm is the category-creation form on the index page.
type CategoryForm struct {
	Name string `form:"name" json:"name"`
}

func (f CategoryForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	return errs
}

// CategoryProductForm creates a product under a category. All numeric
// fields are required here, unlike the edit form.
type CategoryProductForm struct {
	Name        string `form:"name" json:"name"`
	Price       string `form:"price" json:"price"`
	Amount      string `form:"amount" json:"amount"`
	Description string `form:"description" json:"description"`
}

func (f CategoryProductForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	if f.Price == "" {
		errs["price"] = "price is required"
	} else if p, err := strconv.ParseFloat(f.Price, 64); err != nil || p < 0 {
		errs["price"] = "price must be a non-negative number"
	}
	if f.Amount == "" {
		errs["amount"] = "amount is required"
	} else if n, err := strconv.Atoi(f.Amount); err != nil || n < 0 {
		errs["amount"] = "amount must be a non-negative integer"
	}
	return errs
}

// PriceValue and AmountValue assume Validate passed.
func (f CategoryProductForm) PriceValue() float64 {
	p, _ := strconv.ParseFloat(f.Price, 64)
	return p
}

func (f CategoryProductForm) AmountValue() int {
	n, _ := strconv.Atoi(f.Amount)
	return n
}

// ProductForm edits an existing product. Every field is optional; a blank
// field keeps the product's current value, so validation only rejects
// present-but-malformed input.
type ProductForm struct {
	Name        string `form:"name" json:"name"`
	Price       string `form:"price" json:"price"`
	Amount      string `form:"amount" json:"amount"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category"`
}

func (f ProductForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if f.Price != "" {
		if p, err := strconv.ParseFloat(f.Price, 64); err != nil || p < 0 {
			errs["price"] = "price must be a non-negative number"
		}
	}
	if f.Amount != "" {
		if n, err := strconv.Atoi(f.Amount); err != nil || n < 0 {
			errs["amount"] = "amount must be a non-negative integer"
		}
	}
	if f.Category != "" {
		if _, err := strconv.ParseUint(f.Category, 10, 64); err != nil {
			errs["category"] = "category must be a valid id"
		}
	}
	return errs
}

// PriceValue returns the submitted price and whether one was submitted.
func (f ProductForm) PriceValue() (float64, bool) {
	if f.Price == "" {
		return 0, false
	}
	p, err := strconv.ParseFloat(f.Price, 64)
	return p, err == nil
}

func (f ProductForm) AmountValue() (int, bool) {
	if f.Amount == "" {
		return 0, false
	}
	n, err := strconv.Atoi(f.Amount)
	return n, err == nil
}

func (f ProductForm) CategoryValue() (uint, bool) {
	if f.Category == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(f.Category, 10, 64)
	return uint(id), err == nil
}
