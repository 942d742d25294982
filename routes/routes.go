package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/configs"
	"github.com/danielessuu/backend-sd3/controllers"
	"github.com/danielessuu/backend-sd3/middlewares"
	"github.com/danielessuu/backend-sd3/pkg/resp"
	"github.com/danielessuu/backend-sd3/repository"
	"github.com/danielessuu/backend-sd3/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) { resp.MethodNotAllowed(c) })

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authSvc := services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authCtrl := controllers.NewAuthController(authSvc)
	dishCtrl := controllers.NewDishController(db)
	orderCtrl := controllers.NewOrderController(db)

	// Public
	r.GET("/dishes", dishCtrl.List)
	r.POST("/orders", orderCtrl.Place)
	r.GET("/orders/:id", orderCtrl.Detail)

	// Auth
	r.POST("/login", authCtrl.Login)
	r.POST("/token/refresh", authCtrl.Refresh)

	// Staff (token required)
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/orders", orderCtrl.List)
		staff.PATCH("/orders/:id/update_status", orderCtrl.UpdateStatus)
	}
}
