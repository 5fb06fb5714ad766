package catalogcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/shop-api/models"
	"github.com/webshop-go/shop-api/views"
)

const (
	defaultPage  = 1
	defaultSize  = 12
	defaultOrder = "name"
)

// orderings maps accepted order_by values to ORDER BY clauses. Anything else
// falls back to the default instead of reaching the database.
var orderings = map[string]string{
	"name":   "name ASC",
	"-name":  "name DESC",
	"price":  "price ASC",
	"-price": "price DESC",
}

// ListProducts serves the product listing with filtering, ordering and
// pagination. GET /products
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")

		page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
		if err != nil || page < 1 {
			page = defaultPage
		}
		size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
		if err != nil || size < 1 {
			size = defaultSize
		}

		// Price ceiling over the whole catalog; an empty catalog yields 0
		// and an empty page rather than a fault.
		var ceiling float64
		if err := db.Model(&models.Product{}).Select("COALESCE(MAX(price), 0)").Scan(&ceiling).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		minPrice := 0.0
		if v := c.Query("min_price"); v != "" {
			if mp, err := strconv.ParseFloat(v, 64); err == nil {
				minPrice = mp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		maxPrice := ceiling
		if v := c.Query("max_price"); v != "" {
			if mp, err := strconv.ParseFloat(v, 64); err == nil {
				maxPrice = mp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		orderBy := c.DefaultQuery("order_by", defaultOrder)
		orderClause, ok := orderings[orderBy]
		if !ok {
			orderBy = defaultOrder
			orderClause = orderings[defaultOrder]
		}

		filter := func(tx *gorm.DB) *gorm.DB {
			return tx.
				Where("name LIKE ?", "%"+name+"%").
				Where("price >= ?", minPrice).
				Where("price <= ?", maxPrice)
		}

		var total int64
		if err := db.Model(&models.Product{}).Scopes(filter).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		// Clamp out-of-range pages to the last page.
		if totalPages := int((total + int64(size) - 1) / int64(size)); totalPages > 0 && page > totalPages {
			page = totalPages
		}

		var products []models.Product
		if err := db.Scopes(filter).Order(orderClause).Offset((page - 1) * size).Limit(size).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}

		c.JSON(http.StatusOK, views.ProductsPage{
			Products:   products,
			Pagination: views.NewPagination(page, size, total),
			Sizes:      views.Sizes,
			OrderBy:    orderBy,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			Name:       name,
			Error:      c.Query("error"),
		})
	}
}
