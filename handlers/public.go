package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"menuzy-api/config"
	"menuzy-api/geo"
	"menuzy-api/models"

	"github.com/gin-gonic/gin"
)

type NearbyRestaurantResponse struct {
	RestaurantResponse
	Distance float64 `json:"distance"`
}

// GetNearbyRestaurants returns active restaurants within a radius of the
// caller's coordinates, closest first. Restaurants without stored
// coordinates are never returned.
func GetNearbyRestaurants(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude query parameters are required"})
		return
	}
	radius := queryFloat(c, "radius", 10.0)
	limit := queryInt(c, "limit", 20)

	query := config.DB.Preload("Category").
		Where("is_active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var restaurants []models.Restaurant
	query.Find(&restaurants)

	var results []NearbyRestaurantResponse
	for _, r := range restaurants {
		d := geo.Distance(lat, lng, *r.Latitude, *r.Longitude)
		if d <= radius {
			results = append(results, NearbyRestaurantResponse{
				RestaurantResponse: newRestaurantResponse(r),
				Distance:           d,
			})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if len(results) > limit {
		results = results[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "restaurants": results})
}

// SearchRestaurants matches a query string against name, description and
// address of active restaurants, best-rated first.
func SearchRestaurants(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	limit := queryInt(c, "limit", 20)
	term := "%" + strings.ToLower(q) + "%"

	query := config.DB.Preload("Category").
		Where("is_active = ?", true).
		Where("lower(name) LIKE ? OR lower(description) LIKE ? OR lower(address) LIKE ?", term, term, term)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var restaurants []models.Restaurant
	query.Order("rating desc, name").Limit(limit).Find(&restaurants)

	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": newRestaurantResponses(restaurants)})
}

// GetRestaurant returns a single active restaurant
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Category").
		Where("is_active = ?", true).
		First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": newRestaurantResponse(restaurant)})
}

// GetMenu returns the available menu of an active restaurant, ordered by
// menu category display order, then item display order, then name.
func GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.Where("is_active = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.MenuItem
	config.DB.Preload("MenuCategory").
		Joins("LEFT JOIN menu_categories ON menu_categories.id = menu_items.menu_category_id").
		Where("menu_items.restaurant_id = ? AND menu_items.is_available = ?", restaurant.ID, true).
		Order("menu_categories.display_order, menu_items.display_order, menu_items.name").
		Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       newMenuItemResponses(items),
	})
}

// GetRestaurantReviews returns reviews for a restaurant, newest first
func GetRestaurantReviews(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.Where("is_active = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	limit := queryInt(c, "limit", 50)

	var reviews []models.Review
	config.DB.Preload("User").
		Where("restaurant_id = ?", restaurant.ID).
		Order("created_at desc").
		Limit(limit).
		Find(&reviews)

	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": newReviewResponses(reviews)})
}

func queryFloat(c *gin.Context, key string, fallback float64) float64 {
	if v := c.Query(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
