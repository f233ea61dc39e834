package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodCategory is the fixed menu category enumeration
type FoodCategory string

const (
	CategoryVeg     FoodCategory = "veg"
	CategoryNonVeg  FoodCategory = "non-veg"
	CategoryDrinks  FoodCategory = "drinks"
	CategoryDessert FoodCategory = "dessert"
)

// ValidCategory reports whether c is one of the menu categories
func ValidCategory(c FoodCategory) bool {
	switch c {
	case CategoryVeg, CategoryNonVeg, CategoryDrinks, CategoryDessert:
		return true
	}
	return false
}

// MaxGalleryPrice caps what an admin may charge for a gallery image
var MaxGalleryPrice = decimal.RequireFromString("999999.99")

type FoodItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Category    FoodCategory    `json:"category" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description"`
	ImagePath   string          `json:"image_path"`
	Orders      []Order         `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type GalleryImage struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ImagePath string          `json:"image_path" gorm:"not null"`
	Caption   string          `json:"caption" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Orders    []GalleryOrder  `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
