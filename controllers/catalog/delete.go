package catalogcontroller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/shop-api/models"
)

// DeleteProduct removes a product and returns to the listing. A missing
// product is reported through the listing's error notice instead of a
// fault. POST /product/:id/delete
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notice := url.QueryEscape("could not delete product since it does not exist")
				c.Redirect(http.StatusFound, "/products?error="+notice)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.Redirect(http.StatusFound, "/products")
	}
}
