package model

import (
	"time"

	"gorm.io/gorm"
)

// InventoryLocation is a named physical site goods can be received into.
type InventoryLocation struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Address   string         `json:"address" gorm:"type:text"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// InventoryLevel is the on-hand quantity of one SKU at one location.
// Levels are only mutated by receiving; increments happen atomically in
// SQL so concurrent receipts for the same (location, SKU) never lose an
// update.
type InventoryLevel struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	LocationID uint      `json:"location_id" gorm:"not null;uniqueIndex:idx_location_sku"`
	SKU        string    `json:"sku" gorm:"type:varchar(100);not null;uniqueIndex:idx_location_sku"`
	Quantity   int       `json:"quantity" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Location *InventoryLocation `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}
