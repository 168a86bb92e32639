package models

import "time"

// MenuCategory groups menu items within a single restaurant.
type MenuCategory struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// MenuItem belongs to one restaurant and one of that restaurant's menu
// categories. Price is a JSON document so items can carry multiple
// pricing tiers (e.g. small/medium/large).
type MenuItem struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	RestaurantID   uint         `json:"restaurant_id" gorm:"not null;index"`
	MenuCategoryID uint         `json:"menu_category_id" gorm:"not null"`
	MenuCategory   MenuCategory `json:"-" gorm:"foreignKey:MenuCategoryID;constraint:OnDelete:CASCADE"`
	Name           string       `json:"name" gorm:"not null"`
	Description    string       `json:"description"`
	Price          JSONMap      `json:"price" gorm:"type:text;not null"`
	ImageURL       string       `json:"image_url"`
	IsVegetarian   bool         `json:"is_vegetarian" gorm:"default:false"`
	IsVegan        bool         `json:"is_vegan" gorm:"default:false"`
	IsGlutenFree   bool         `json:"is_gluten_free" gorm:"default:false"`
	Ingredients    StringList   `json:"ingredients" gorm:"type:text"`
	Allergens      StringList   `json:"allergens" gorm:"type:text"`
	IsAvailable    bool         `json:"is_available" gorm:"default:true"`
	DisplayOrder   int          `json:"display_order" gorm:"default:0"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
