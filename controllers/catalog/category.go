package catalogcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/shop-api/forms"
	"github.com/webshop-go/shop-api/models"
	"github.com/webshop-go/shop-api/views"
)

// Index lists all categories with an empty creation form. GET /
func Index(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, views.IndexPage{Categories: categories, Form: forms.CategoryForm{}})
	}
}

// CreateCategory validates the submitted form and re-renders the index with
// the updated category list; no redirect. POST /
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form forms.CategoryForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		errs := form.Validate()
		if errs.Valid() {
			var count int64
			if err := db.Model(&models.Category{}).Where("name = ?", form.Name).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
			if count > 0 {
				errs["name"] = "category with this name already exists"
			}
		}
		if !errs.Valid() {
			var categories []models.Category
			if err := db.Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
			c.JSON(http.StatusBadRequest, views.IndexPage{Categories: categories, Form: form, Errors: errs})
			return
		}

		category := models.Category{Name: form.Name}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, views.IndexPage{Categories: categories, Form: forms.CategoryForm{}})
	}
}

// GetCategory shows a category, its products and an empty product form.
// GET /category/:id
func GetCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := findCategory(c, db)
		if !ok {
			return
		}
		products, ok := categoryProducts(c, db, category.ID)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, views.CategoryPage{
			Category: category,
			Products: products,
			Form:     forms.CategoryProductForm{},
		})
	}
}

// CreateProduct creates a product under the category and re-renders the
// category page with a refreshed list and a fresh form. On validation
// failure the submitted form and the previously fetched product list are
// re-rendered instead. POST /category/:id
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := findCategory(c, db)
		if !ok {
			return
		}
		products, ok := categoryProducts(c, db, category.ID)
		if !ok {
			return
		}

		var form forms.CategoryProductForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := form.Validate(); !errs.Valid() {
			c.JSON(http.StatusBadRequest, views.CategoryPage{
				Category: category,
				Products: products,
				Form:     form,
				Errors:   errs,
			})
			return
		}

		product := models.Product{
			Name:        form.Name,
			Price:       form.PriceValue(),
			Amount:      form.AmountValue(),
			Description: form.Description,
			CategoryID:  category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		products, ok = categoryProducts(c, db, category.ID)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, views.CategoryPage{
			Category: category,
			Products: products,
			Form:     forms.CategoryProductForm{},
		})
	}
}

func findCategory(c *gin.Context, db *gorm.DB) (models.Category, bool) {
	var category models.Category
	if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		}
		return category, false
	}
	return category, true
}

func categoryProducts(c *gin.Context, db *gorm.DB, categoryID uint) ([]models.Product, bool) {
	var products []models.Product
	if err := db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return nil, false
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, true
}
