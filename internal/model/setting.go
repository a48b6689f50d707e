package model

import "time"

// SettingKeyApprovalThreshold is the settings key holding the PO
// approval threshold in minor currency units.
const SettingKeyApprovalThreshold = "po_approval_threshold_cents"

// Setting is a simple key/value row for operational configuration that
// can change at runtime, e.g. the approval threshold.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"type:varchar(100);not null;uniqueIndex"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedBy string    `json:"updated_by" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
