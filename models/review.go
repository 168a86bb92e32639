package models

import "time"

// Review is one user's rating of one restaurant. The composite unique
// index enforces at most one review per (restaurant, user) pair.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_reviews_restaurant_user"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_restaurant_user"`
	User         User      `json:"-" gorm:"foreignKey:UserID"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Favorite marks a restaurant as saved by a user; at most one row per pair.
type Favorite struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_restaurant"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_favorites_user_restaurant"`
	CreatedAt    time.Time `json:"created_at"`
}
