package models

import "time"

// Category is a platform-wide restaurant category managed by super admins.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

type Restaurant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Address      string    `json:"address" gorm:"not null"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CategoryID   uint      `json:"category_id" gorm:"not null"`
	Category     Category  `json:"-" gorm:"foreignKey:CategoryID"`
	OwnerID      uint      `json:"owner_id" gorm:"not null"`
	Owner        User      `json:"-" gorm:"foreignKey:OwnerID"`
	ImageURL     string    `json:"image_url"`
	OpeningHours JSONMap   `json:"opening_hours" gorm:"type:text"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	// Rating and TotalReviews are derived from reviews and recomputed on
	// every review mutation — never written directly by callers.
	Rating       float64   `json:"rating" gorm:"default:0"`
	TotalReviews int       `json:"total_reviews" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
