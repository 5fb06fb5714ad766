package basketcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/webshop-go/shop-api/models"
	"github.com/webshop-go/shop-api/views"
)

// GetBasket lists the caller's basket items. GET /basket
func GetBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.BasketItem
		if err := db.Preload("Product").Where("owner_id = ?", userID).Order("added_at ASC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch basket"})
			return
		}
		c.JSON(http.StatusOK, views.NewBasketPage(items))
	}
}

// AddToBasket inserts a basket line for the product or bumps its amount by
// one. The upsert targets the (product_id, owner_id) unique index, so
// concurrent adds cannot create duplicate lines. POST /basket/add/:product_id
func AddToBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		item := models.BasketItem{
			ProductID: product.ID,
			OwnerID:   userID,
			Amount:    1,
			AddedAt:   time.Now(),
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "owner_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"amount": gorm.Expr("basket_items.amount + 1")}),
		}).Create(&item).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to basket"})
			return
		}

		c.Redirect(http.StatusFound, "/basket")
	}
}

// RemoveFromBasket deletes one basket line, addressed by the line's own id
// rather than the product id. POST /basket/remove/:item_id
func RemoveFromBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid basket item ID"})
			return
		}

		var item models.BasketItem
		if err := db.Where("owner_id = ?", userID).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Basket item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch basket item"})
			}
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete basket item"})
			return
		}
		c.Redirect(http.StatusFound, "/basket")
	}
}

// ClearBasket removes every line owned by the caller. POST /basket/clear
func ClearBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := db.Where("owner_id = ?", userID).Delete(&models.BasketItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear basket"})
			return
		}
		c.Redirect(http.StatusFound, "/basket")
	}
}
