package handlers

import (
	"net/http"

	"menuzy-api/authz"
	"menuzy-api/config"
	"menuzy-api/middleware"
	"menuzy-api/models"

	"github.com/gin-gonic/gin"
)

var adminRoles = []models.UserRole{models.RoleRestaurantAdmin, models.RoleSuperAdmin}

// restaurantOwner resolves a restaurant's owner for ownership checks.
func restaurantOwner(restaurantID uint) (uint, bool) {
	var restaurant models.Restaurant
	if err := config.DB.Select("owner_id").First(&restaurant, restaurantID).Error; err != nil {
		return 0, false
	}
	return restaurant.OwnerID, true
}

// requireOwnedRestaurant resolves the caller's restaurant by owner match
// and runs the central authorization check against it before any admin
// operation touches its rows.
func requireOwnedRestaurant(c *gin.Context) (models.Restaurant, bool) {
	userID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return restaurant, false
	}
	if err := authz.Authorize(middleware.CallerFrom(c), adminRoles, restaurant.ID, restaurantOwner); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to manage this restaurant"})
		return restaurant, false
	}
	return restaurant, true
}

// GetMyRestaurant fetches the restaurant owned by the logged-in admin
func GetMyRestaurant(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	config.DB.Preload("Category").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"restaurant": newRestaurantResponse(restaurant)})
}

// ── Menu categories ─────────────────────────────────────────────────────────

type CreateMenuCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// GetMenuCategories lists the active menu categories of the admin's restaurant
func GetMenuCategories(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	var categories []models.MenuCategory
	config.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("display_order, name").
		Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "menu_categories": categories})
}

// CreateMenuCategory adds a menu category to the admin's restaurant
func CreateMenuCategory(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	var req CreateMenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.MenuCategory{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu category created", "menu_category": category})
}

// ── Menu items ──────────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	MenuCategoryID uint              `json:"menu_category_id" binding:"required"`
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Price          models.JSONMap    `json:"price" binding:"required"`
	ImageURL       string            `json:"image_url"`
	IsVegetarian   bool              `json:"is_vegetarian"`
	IsVegan        bool              `json:"is_vegan"`
	IsGlutenFree   bool              `json:"is_gluten_free"`
	Ingredients    models.StringList `json:"ingredients"`
	Allergens      models.StringList `json:"allergens"`
	DisplayOrder   int               `json:"display_order"`
}

type UpdateMenuItemRequest struct {
	MenuCategoryID *uint             `json:"menu_category_id"`
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Price          models.JSONMap    `json:"price"`
	ImageURL       *string           `json:"image_url"`
	IsVegetarian   *bool             `json:"is_vegetarian"`
	IsVegan        *bool             `json:"is_vegan"`
	IsGlutenFree   *bool             `json:"is_gluten_free"`
	Ingredients    models.StringList `json:"ingredients"`
	Allergens      models.StringList `json:"allergens"`
	IsAvailable    *bool             `json:"is_available"`
	DisplayOrder   *int              `json:"display_order"`
}

// updates translates present fields into a column map. Field names stay
// fixed here; caller input never reaches the SET clause. Omitted and
// explicit-null fields are indistinguishable, so a column cannot be
// cleared through this contract.
func (r UpdateMenuItemRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.MenuCategoryID != nil {
		u["menu_category_id"] = *r.MenuCategoryID
	}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Price != nil {
		u["price"] = r.Price
	}
	if r.ImageURL != nil {
		u["image_url"] = *r.ImageURL
	}
	if r.IsVegetarian != nil {
		u["is_vegetarian"] = *r.IsVegetarian
	}
	if r.IsVegan != nil {
		u["is_vegan"] = *r.IsVegan
	}
	if r.IsGlutenFree != nil {
		u["is_gluten_free"] = *r.IsGlutenFree
	}
	if r.Ingredients != nil {
		u["ingredients"] = r.Ingredients
	}
	if r.Allergens != nil {
		u["allergens"] = r.Allergens
	}
	if r.IsAvailable != nil {
		u["is_available"] = *r.IsAvailable
	}
	if r.DisplayOrder != nil {
		u["display_order"] = *r.DisplayOrder
	}
	return u
}

// GetMenuItems lists all menu items of the admin's restaurant
func GetMenuItems(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	var items []models.MenuItem
	config.DB.Preload("MenuCategory").
		Joins("LEFT JOIN menu_categories ON menu_categories.id = menu_items.menu_category_id").
		Where("menu_items.restaurant_id = ?", restaurant.ID).
		Order("menu_categories.display_order, menu_items.display_order, menu_items.name").
		Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": newMenuItemResponses(items)})
}

// CreateMenuItem adds an item to the admin's restaurant. The target menu
// category must belong to the same restaurant.
func CreateMenuItem(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !menuCategoryBelongsTo(restaurant.ID, req.MenuCategoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu category"})
		return
	}

	item := models.MenuItem{
		RestaurantID:   restaurant.ID,
		MenuCategoryID: req.MenuCategoryID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		IsVegetarian:   req.IsVegetarian,
		IsVegan:        req.IsVegan,
		IsGlutenFree:   req.IsGlutenFree,
		Ingredients:    req.Ingredients,
		Allergens:      req.Allergens,
		IsAvailable:    true,
		DisplayOrder:   req.DisplayOrder,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	config.DB.Preload("MenuCategory").First(&item, item.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": newMenuItemResponse(item)})
}

// UpdateMenuItem partially updates a menu item of the admin's restaurant.
// Only fields present in the request are written.
func UpdateMenuItem(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := config.DB.Where("id = ? AND restaurant_id = ?", c.Param("itemId"), restaurant.ID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}
	if req.MenuCategoryID != nil && !menuCategoryBelongsTo(restaurant.ID, *req.MenuCategoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu category"})
		return
	}

	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	config.DB.Preload("MenuCategory").First(&item, item.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": newMenuItemResponse(item)})
}

// DeleteMenuItem hard-deletes a menu item. The query is scoped by the
// owned restaurant, so a foreign item id reads as not found.
func DeleteMenuItem(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ? AND restaurant_id = ?", c.Param("itemId"), restaurant.ID).
		Delete(&models.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func menuCategoryBelongsTo(restaurantID, menuCategoryID uint) bool {
	var category models.MenuCategory
	err := config.DB.Where("id = ? AND restaurant_id = ?", menuCategoryID, restaurantID).
		First(&category).Error
	return err == nil
}

// ── Location & reviews ──────────────────────────────────────────────────────

type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Address   string   `json:"address" binding:"required"`
}

// UpdateLocation sets the coordinates and address of the admin's restaurant
func UpdateLocation(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Model(&restaurant).Updates(map[string]interface{}{
		"latitude":  *req.Latitude,
		"longitude": *req.Longitude,
		"address":   req.Address,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location updated"})
}

// GetMyRestaurantReviews lists reviews of the admin's restaurant, newest first
func GetMyRestaurantReviews(c *gin.Context) {
	restaurant, ok := requireOwnedRestaurant(c)
	if !ok {
		return
	}
	var reviews []models.Review
	config.DB.Preload("User").
		Where("restaurant_id = ?", restaurant.ID).
		Order("created_at desc").
		Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": newReviewResponses(reviews)})
}
