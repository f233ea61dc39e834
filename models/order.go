package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order row
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
)

// Order is one food-item line in the ledger. Totals are derived from the
// item's current price, never snapshotted at order time.
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"not null;index"`
	User      User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ItemID    uint        `json:"item_id" gorm:"not null;index"`
	Item      FoodItem    `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Quantity  int         `json:"quantity" gorm:"not null;default:1"`
	Status    OrderStatus `json:"status" gorm:"not null;default:'Pending'"`
	OrderedAt time.Time   `json:"ordered_at" gorm:"autoCreateTime"`
}

// TotalPrice is quantity x the item's current price. Item must be loaded.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.Item.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// GalleryOrder mirrors Order against the gallery catalog.
type GalleryOrder struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    uint         `json:"user_id" gorm:"not null;index"`
	User      User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ItemID    uint         `json:"item_id" gorm:"not null;index"`
	Item      GalleryImage `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Quantity  int          `json:"quantity" gorm:"not null;default:1"`
	Status    OrderStatus  `json:"status" gorm:"not null;default:'Pending'"`
	OrderedAt time.Time    `json:"ordered_at" gorm:"autoCreateTime"`
}

func (g *GalleryOrder) TotalPrice() decimal.Decimal {
	return g.Item.Price.Mul(decimal.NewFromInt(int64(g.Quantity)))
}
