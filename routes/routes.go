package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/configs"
	"github.com/Avadhut20/roxiler/controllers"
	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/middlewares"
	"github.com/Avadhut20/roxiler/pkg/logger"
	"github.com/Avadhut20/roxiler/repository"
	"github.com/Avadhut20/roxiler/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logger.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	storeSvc := services.NewStoreService(storeRepo, userRepo, ratingRepo)
	ratingSvc := services.NewRatingService(db, storeRepo, ratingRepo, log)
	dashSvc := services.NewDashboardService(db, userRepo, storeRepo, ratingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	storeCtrl := controllers.NewStoreController(storeSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)
	ownerCtrl := controllers.NewOwnerController(dashSvc)
	adminCtrl := controllers.NewAdminController(userSvc, storeSvc, ratingSvc, dashSvc)

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Any authenticated role
	u := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/stores", storeCtrl.List)
		u.POST("/ratings", ratingCtrl.Submit)
		u.PUT("/user/password", authCtrl.ChangePassword)
	}

	// Owner (owner only)
	owner := api.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner))
	{
		owner.GET("/dashboard", ownerCtrl.Dashboard)
	}

	// Admin (admin only)
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/users/:id", adminCtrl.UserDetail)
		admin.POST("/stores", adminCtrl.CreateStore)
		admin.GET("/stores", adminCtrl.Stores)
		admin.POST("/stores/:id/reconcile", adminCtrl.ReconcileStore)
	}
}
