package handlers

import (
	"time"

	"menuzy-api/models"
)

// Response shapes denormalize referenced names (category, reviewer) at
// assembly time; the joined names are never stored on the row.

type RestaurantResponse struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	CategoryID   uint           `json:"category_id"`
	CategoryName string         `json:"category_name"`
	OwnerID      uint           `json:"owner_id"`
	ImageURL     string         `json:"image_url"`
	OpeningHours models.JSONMap `json:"opening_hours"`
	IsActive     bool           `json:"is_active"`
	Rating       float64        `json:"rating"`
	TotalReviews int            `json:"total_reviews"`
	CreatedAt    time.Time      `json:"created_at"`
}

// newRestaurantResponse expects r.Category to be preloaded.
func newRestaurantResponse(r models.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Phone:        r.Phone,
		Email:        r.Email,
		CategoryID:   r.CategoryID,
		CategoryName: r.Category.Name,
		OwnerID:      r.OwnerID,
		ImageURL:     r.ImageURL,
		OpeningHours: r.OpeningHours,
		IsActive:     r.IsActive,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
		CreatedAt:    r.CreatedAt,
	}
}

func newRestaurantResponses(restaurants []models.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, newRestaurantResponse(r))
	}
	return out
}

type MenuItemResponse struct {
	ID             uint              `json:"id"`
	RestaurantID   uint              `json:"restaurant_id"`
	MenuCategoryID uint              `json:"menu_category_id"`
	CategoryName   string            `json:"category_name"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          models.JSONMap    `json:"price"`
	ImageURL       string            `json:"image_url"`
	IsVegetarian   bool              `json:"is_vegetarian"`
	IsVegan        bool              `json:"is_vegan"`
	IsGlutenFree   bool              `json:"is_gluten_free"`
	Ingredients    models.StringList `json:"ingredients"`
	Allergens      models.StringList `json:"allergens"`
	IsAvailable    bool              `json:"is_available"`
	DisplayOrder   int               `json:"display_order"`
	CreatedAt      time.Time         `json:"created_at"`
}

// newMenuItemResponse expects item.MenuCategory to be preloaded.
func newMenuItemResponse(item models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:             item.ID,
		RestaurantID:   item.RestaurantID,
		MenuCategoryID: item.MenuCategoryID,
		CategoryName:   item.MenuCategory.Name,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
		ImageURL:       item.ImageURL,
		IsVegetarian:   item.IsVegetarian,
		IsVegan:        item.IsVegan,
		IsGlutenFree:   item.IsGlutenFree,
		Ingredients:    item.Ingredients,
		Allergens:      item.Allergens,
		IsAvailable:    item.IsAvailable,
		DisplayOrder:   item.DisplayOrder,
		CreatedAt:      item.CreatedAt,
	}
}

func newMenuItemResponses(items []models.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newMenuItemResponse(item))
	}
	return out
}

type ReviewResponse struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurant_id"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// newReviewResponse expects review.User to be preloaded.
func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		RestaurantID: review.RestaurantID,
		UserID:       review.UserID,
		UserName:     review.User.FullName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

func newReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResponse(r))
	}
	return out
}
