package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/shop-api/auth"
	basketcontroller "github.com/webshop-go/shop-api/controllers/basket"
	catalogcontroller "github.com/webshop-go/shop-api/controllers/catalog"
	"github.com/webshop-go/shop-api/middleware"
)

// SetupRoutes wires the catalog, basket and auth endpoints.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/", catalogcontroller.Index(db))
	r.POST("/", catalogcontroller.CreateCategory(db))
	r.GET("/products", catalogcontroller.ListProducts(db))
	r.GET("/products/export", catalogcontroller.ExportProducts(db))
	r.GET("/category/:id", catalogcontroller.GetCategory(db))
	r.POST("/category/:id", catalogcontroller.CreateProduct(db))
	r.GET("/product/:id", catalogcontroller.GetProductByID(db))
	r.GET("/product/:id/edit", catalogcontroller.GetEditProduct(db))
	r.POST("/product/:id/edit", catalogcontroller.UpdateProduct(db))
	r.POST("/product/:id/delete", catalogcontroller.DeleteProduct(db))

	// ──────────────── Auth ────────────────
	r.GET("/auth/login", auth.LoginPage)
	r.POST("/auth/login", auth.Login(db))

	// ──────────────── Basket (auth-gated) ────────────────
	basketGroup := r.Group("/basket")
	basketGroup.Use(middleware.RequireAuth)
	{
		basketGroup.GET("", basketcontroller.GetBasket(db))
		basketGroup.POST("/add/:product_id", basketcontroller.AddToBasket(db))
		basketGroup.POST("/remove/:item_id", basketcontroller.RemoveFromBasket(db))
		basketGroup.POST("/clear", basketcontroller.ClearBasket(db))
	}
}
