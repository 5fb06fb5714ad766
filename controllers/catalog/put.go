package catalogcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/shop-api/forms"
	"github.com/webshop-go/shop-api/models"
	"github.com/webshop-go/shop-api/views"
)

// GetEditProduct pre-populates the edit form from the product's current
// values, with all categories for the selector. GET /product/:id/edit
func GetEditProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(c, db)
		if !ok {
			return
		}
		categories, ok := allCategories(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, views.EditProductPage{
			Product:    product,
			Form:       formFromProduct(product),
			Categories: categories,
		})
	}
}

// UpdateProduct applies submitted fields to the product, keeping current
// values where a field was left blank, then redirects to the listing. On
// validation failure the form is reset to the product's pre-edit values and
// re-rendered with the errors. POST /product/:id/edit
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(c, db)
		if !ok {
			return
		}

		var form forms.ProductForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		errs := form.Validate()
		if errs.Valid() {
			if id, submitted := form.CategoryValue(); submitted {
				var count int64
				if err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
					return
				}
				if count == 0 {
					errs["category"] = "category does not exist"
				}
			}
		}
		if !errs.Valid() {
			categories, ok := allCategories(c, db)
			if !ok {
				return
			}
			// Submitted values are discarded; the form shows the product's
			// current values alongside the errors.
			c.JSON(http.StatusBadRequest, views.EditProductPage{
				Product:    product,
				Form:       formFromProduct(product),
				Categories: categories,
				Errors:     errs,
			})
			return
		}

		if form.Name != "" {
			product.Name = form.Name
		}
		if v, submitted := form.PriceValue(); submitted {
			product.Price = v
		}
		if v, submitted := form.AmountValue(); submitted {
			product.Amount = v
		}
		if form.Description != "" {
			product.Description = form.Description
		}
		if v, submitted := form.CategoryValue(); submitted {
			product.CategoryID = v
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.Redirect(http.StatusFound, "/products")
	}
}

func findProduct(c *gin.Context, db *gorm.DB) (models.Product, bool) {
	var product models.Product
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return product, false
	}
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return product, false
	}
	return product, true
}

func allCategories(c *gin.Context, db *gorm.DB) ([]models.Category, bool) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return nil, false
	}
	return categories, true
}

func formFromProduct(p models.Product) forms.ProductForm {
	return forms.ProductForm{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Amount:      strconv.Itoa(p.Amount),
		Description: p.Description,
		Category:    strconv.FormatUint(uint64(p.CategoryID), 10),
	}
}
