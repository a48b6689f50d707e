package model

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a vendor purchase orders are placed with.
// Reference data from the purchasing engine's point of view.
type Supplier struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"type:varchar(100);index;not null"`
	Code          string         `json:"code" gorm:"type:varchar(50);uniqueIndex"`
	ContactPerson string         `json:"contact_person" gorm:"type:varchar(100)"`
	Email         string         `json:"email" gorm:"type:varchar(100)"`
	Phone         string         `json:"phone" gorm:"type:varchar(20)"`
	Address       string         `json:"address" gorm:"type:text"`
	PaymentTerms  string         `json:"payment_terms" gorm:"type:varchar(100)"`
	Notes         string         `json:"notes" gorm:"type:text"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	Products []SupplierProduct `json:"products,omitempty" gorm:"foreignKey:SupplierID"`
}

// SupplierProduct is one SKU a supplier can fulfil, with the
// supplier-side cost in minor currency units.
type SupplierProduct struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SupplierID    uint      `json:"supplier_id" gorm:"not null;uniqueIndex:idx_supplier_sku"`
	SKU           string    `json:"sku" gorm:"type:varchar(100);not null;uniqueIndex:idx_supplier_sku"`
	Name          string    `json:"name" gorm:"type:varchar(200)"`
	UnitCostCents int64     `json:"unit_cost_cents" gorm:"not null;default:0"`
	LeadTimeDays  int       `json:"lead_time_days" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
