package handlers

import (
	"net/http"

	"menuzy-api/config"
	"menuzy-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboardStats returns platform-wide counts for the super admin dashboard
func GetDashboardStats(c *gin.Context) {
	var totalRestaurants, totalUsers, totalReviews, totalCategories int64
	config.DB.Model(&models.Restaurant{}).Where("is_active = ?", true).Count(&totalRestaurants)
	config.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&totalUsers)
	config.DB.Model(&models.Review{}).Count(&totalReviews)
	config.DB.Model(&models.Category{}).Where("is_active = ?", true).Count(&totalCategories)

	c.JSON(http.StatusOK, gin.H{
		"total_restaurants": totalRestaurants,
		"total_users":       totalUsers,
		"total_reviews":     totalReviews,
		"total_categories":  totalCategories,
	})
}

// ── Restaurants ─────────────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description"`
	Address      string         `json:"address" binding:"required"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	CategoryID   uint           `json:"category_id" binding:"required"`
	ImageURL     string         `json:"image_url"`
	OpeningHours models.JSONMap `json:"opening_hours"`
	OwnerEmail   string         `json:"owner_email" binding:"required,email"`
	OwnerName    string         `json:"owner_name" binding:"required"`
	OwnerPhone   string         `json:"owner_phone"`
}

type UpdateRestaurantRequest struct {
	Name         *string        `json:"name"`
	Description  *string        `json:"description"`
	Address      *string        `json:"address"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	Phone        *string        `json:"phone"`
	Email        *string        `json:"email"`
	CategoryID   *uint          `json:"category_id"`
	ImageURL     *string        `json:"image_url"`
	OpeningHours models.JSONMap `json:"opening_hours"`
}

func (r UpdateRestaurantRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Address != nil {
		u["address"] = *r.Address
	}
	if r.Latitude != nil {
		u["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		u["longitude"] = *r.Longitude
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.CategoryID != nil {
		u["category_id"] = *r.CategoryID
	}
	if r.ImageURL != nil {
		u["image_url"] = *r.ImageURL
	}
	if r.OpeningHours != nil {
		u["opening_hours"] = r.OpeningHours
	}
	return u
}

// CreateRestaurantWithOwner creates a restaurant and provisions its
// owner in one transaction. An existing user with the owner email is
// moved to the restaurant_admin role and reused; otherwise a
// restaurant_admin account without a password is created. Such accounts
// cannot log in locally until a password is provisioned separately.
func CreateRestaurantWithOwner(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.Where("email = ?", req.OwnerEmail).First(&owner).Error; err == nil {
			if err := tx.Model(&owner).Update("role", models.RoleRestaurantAdmin).Error; err != nil {
				return err
			}
		} else {
			owner = models.User{
				Email:    req.OwnerEmail,
				FullName: req.OwnerName,
				Phone:    req.OwnerPhone,
				Role:     models.RoleRestaurantAdmin,
				IsActive: true,
			}
			if err := tx.Create(&owner).Error; err != nil {
				return err
			}
		}

		restaurant = models.Restaurant{
			Name:         req.Name,
			Description:  req.Description,
			Address:      req.Address,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			Phone:        req.Phone,
			Email:        req.Email,
			CategoryID:   req.CategoryID,
			OwnerID:      owner.ID,
			ImageURL:     req.ImageURL,
			OpeningHours: req.OpeningHours,
			IsActive:     true,
		}
		return tx.Create(&restaurant).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	config.DB.Preload("Category").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": newRestaurantResponse(restaurant)})
}

// GetAllRestaurants returns every restaurant, including inactive ones
func GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Preload("Category").Order("created_at desc").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": newRestaurantResponses(restaurants)})
}

// UpdateRestaurant partially updates any restaurant
func UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := config.DB.Model(&restaurant).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	config.DB.Preload("Category").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": newRestaurantResponse(restaurant)})
}

// ── Users ───────────────────────────────────────────────────────────────────

// GetAllUsers returns all users, newest first
func GetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Order("created_at desc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// GetUser returns a single user's details
func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ── Categories ──────────────────────────────────────────────────────────────

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GetCategories returns all platform categories ordered by name
func GetCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("name").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// CreateCategory adds a new platform category
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Category
	if result := config.DB.Where("name = ?", req.Name).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory replaces a category's name, description and icon
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&category).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"icon":        req.Icon,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	config.DB.First(&category, category.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory removes a category unless any restaurant references it
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var inUse int64
	config.DB.Model(&models.Restaurant{}).Where("category_id = ?", category.ID).Count(&inUse)
	if inUse > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete category that is being used by restaurants"})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
