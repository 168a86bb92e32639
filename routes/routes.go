package routes

import (
	"menuzy-api/handlers"
	"menuzy-api/middleware"
	"menuzy-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/google", handlers.GoogleLogin)

		// Catalog (no auth needed)
		public.GET("/restaurants/nearby", handlers.GetNearbyRestaurants)
		public.GET("/restaurants/search", handlers.SearchRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
		public.GET("/restaurants/:id/reviews", handlers.GetRestaurantReviews)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.GetProfile)
		auth.POST("/restaurants/:id/review", handlers.CreateReview)
		auth.GET("/favorites", handlers.GetMyFavorites)
		auth.POST("/favorites/:restaurantId", handlers.AddFavorite)
		auth.DELETE("/favorites/:restaurantId", handlers.RemoveFavorite)
	}

	// ── Restaurant admin routes ────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurantAdmin, models.RoleSuperAdmin))
	{
		admin.GET("/restaurant", handlers.GetMyRestaurant)
		admin.PUT("/location", handlers.UpdateLocation)
		admin.GET("/reviews", handlers.GetMyRestaurantReviews)

		// Menu management
		admin.GET("/menu-categories", handlers.GetMenuCategories)
		admin.POST("/menu-categories", handlers.CreateMenuCategory)
		admin.GET("/menu", handlers.GetMenuItems)
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:itemId", handlers.DeleteMenuItem)
	}

	// ── Super admin routes ─────────────────────────────────────────
	superadmin := r.Group("/api/superadmin")
	superadmin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleSuperAdmin))
	{
		superadmin.GET("/dashboard", handlers.GetDashboardStats)
		superadmin.GET("/restaurants", handlers.GetAllRestaurants)
		superadmin.POST("/restaurants", handlers.CreateRestaurantWithOwner)
		superadmin.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		superadmin.GET("/users", handlers.GetAllUsers)
		superadmin.GET("/users/:id", handlers.GetUser)
		superadmin.GET("/categories", handlers.GetCategories)
		superadmin.POST("/categories", handlers.CreateCategory)
		superadmin.PUT("/categories/:id", handlers.UpdateCategory)
		superadmin.DELETE("/categories/:id", handlers.DeleteCategory)
	}
}
