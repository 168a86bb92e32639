package handlers

import (
	"math"
	"net/http"

	"menuzy-api/config"
	"menuzy-api/middleware"
	"menuzy-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview posts a review for a restaurant. One review per user per
// restaurant; the restaurant's aggregate rating and review count are
// recomputed in the same transaction as the insert.
func CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := config.DB.Where("is_active = ?", true).First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Review
	if result := config.DB.Where("restaurant_id = ? AND user_id = ?", restaurant.ID, userID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this restaurant"})
		return
	}

	review := models.Review{
		RestaurantID: restaurant.ID,
		UserID:       userID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recalcRestaurantRating(tx, restaurant.ID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	config.DB.Preload("User").First(&review, review.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Review added", "review": newReviewResponse(review)})
}

// recalcRestaurantRating recomputes the derived rating (mean of all
// reviews, 2 decimal places) and review count inside the caller's
// transaction.
func recalcRestaurantRating(tx *gorm.DB, restaurantID uint) error {
	var agg struct {
		Avg   float64
		Total int64
	}
	if err := tx.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS total").
		Scan(&agg).Error; err != nil {
		return err
	}
	return tx.Model(&models.Restaurant{}).Where("id = ?", restaurantID).
		Updates(map[string]interface{}{
			"rating":        math.Round(agg.Avg*100) / 100,
			"total_reviews": agg.Total,
		}).Error
}

// AddFavorite saves a restaurant to the caller's favorites. Adding the
// same restaurant twice is a no-op success.
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := config.DB.Where("is_active = ?", true).First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	favorite := models.Favorite{UserID: userID, RestaurantID: restaurant.ID}
	if err := config.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurant.ID).
		FirstOrCreate(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant added to favorites"})
}

// RemoveFavorite removes a restaurant from the caller's favorites.
// Removing an absent favorite still reports success.
func RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	config.DB.Where("user_id = ? AND restaurant_id = ?", userID, c.Param("restaurantId")).
		Delete(&models.Favorite{})

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant removed from favorites"})
}

// GetMyFavorites lists the caller's favorite restaurants, most recently
// favorited first.
func GetMyFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var restaurants []models.Restaurant
	config.DB.Preload("Category").
		Joins("JOIN favorites ON favorites.restaurant_id = restaurants.id").
		Where("favorites.user_id = ? AND restaurants.is_active = ?", userID, true).
		Order("favorites.created_at desc").
		Find(&restaurants)

	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": newRestaurantResponses(restaurants)})
}
