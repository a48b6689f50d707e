package model

import (
	"time"
)

// POStatus represents the lifecycle status of a purchase order
type POStatus string

const (
	POStatusDraft             POStatus = "draft"
	POStatusPendingApproval   POStatus = "pending_approval"
	POStatusApproved          POStatus = "approved"
	POStatusSent              POStatus = "sent"
	POStatusPartiallyReceived POStatus = "partially_received"
	POStatusClosed            POStatus = "closed"
	POStatusCancelled         POStatus = "cancelled"
)

// POEventType identifies a purchase order audit event
type POEventType string

const (
	POEventSubmitted       POEventType = "submitted"
	POEventApproved        POEventType = "approved"
	POEventRejected        POEventType = "rejected"
	POEventSent            POEventType = "sent"
	POEventShipmentCreated POEventType = "shipment_created"
	POEventReceiptRecorded POEventType = "receipt_recorded"
	POEventCancelled       POEventType = "cancelled"
	POEventClosed          POEventType = "closed"
)

// PurchaseOrder represents a commitment to buy from a supplier.
// Status only ever changes through the purchasing state machine;
// TotalAmountCents is in minor currency units and is recomputed from
// line items while the order is still a draft.
type PurchaseOrder struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	PONumber         string     `json:"po_number" gorm:"type:varchar(30);not null;uniqueIndex"`
	SupplierID       uint       `json:"supplier_id" gorm:"index;not null"`
	Status           POStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	TotalAmountCents int64      `json:"total_amount_cents" gorm:"not null;default:0"`
	ApprovedBy       string     `json:"approved_by" gorm:"type:varchar(100)"`
	CreatedBy        string     `json:"created_by" gorm:"type:varchar(100)"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Supplier  *Supplier    `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	LineItems []POLineItem `json:"line_items,omitempty" gorm:"foreignKey:PurchaseOrderID"`
	Events    []POEvent    `json:"events,omitempty" gorm:"foreignKey:PurchaseOrderID"`
	Shipments []Shipment   `json:"shipments,omitempty" gorm:"foreignKey:PurchaseOrderID"`
}

// POLineItem is one SKU/quantity/cost entry within a purchase order.
// ReceivedQty starts at 0 and only ever grows; it may exceed OrderedQty
// when an over-receipt is recorded, in which case OverReceived is set.
type POLineItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PurchaseOrderID uint      `json:"purchase_order_id" gorm:"index;not null"`
	SKU             string    `json:"sku" gorm:"type:varchar(100);not null;index"`
	OrderedQty      int       `json:"ordered_qty" gorm:"not null;check:ordered_qty > 0"`
	ReceivedQty     int       `json:"received_qty" gorm:"not null;default:0"`
	UnitCostCents   int64     `json:"unit_cost_cents" gorm:"not null"`
	OverReceived    bool      `json:"over_received" gorm:"not null;default:false"`
	SortOrder       int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExtendedCostCents is the line's ordered quantity times unit cost.
func (li *POLineItem) ExtendedCostCents() int64 {
	return int64(li.OrderedQty) * li.UnitCostCents
}

// POEvent is one append-only audit record for a purchase order.
// Rows are only ever inserted; there is no update or delete path.
type POEvent struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	PurchaseOrderID uint        `json:"purchase_order_id" gorm:"index;not null"`
	EventType       POEventType `json:"event_type" gorm:"type:varchar(30);not null"`
	Actor           string      `json:"actor" gorm:"type:varchar(100)"`
	Note            string      `json:"note" gorm:"type:text"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Shipment is a carrier shipment registered against a purchase order.
type Shipment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PurchaseOrderID uint      `json:"purchase_order_id" gorm:"index;not null"`
	Carrier         string    `json:"carrier" gorm:"type:varchar(100)"`
	TrackingNumber  string    `json:"tracking_number" gorm:"type:varchar(100)"`
	Status          string    `json:"status" gorm:"type:varchar(30);default:'in_transit'"`
	CreatedAt       time.Time `json:"created_at"`
}

// GoodsReceipt is a single receiving event against a purchase order.
// Once processed it is an immutable fact; corrections are recorded as
// new receipts, never by editing an old one.
type GoodsReceipt struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Reference       string    `json:"reference" gorm:"type:varchar(50);not null;uniqueIndex"`
	PurchaseOrderID uint      `json:"purchase_order_id" gorm:"index;not null"`
	ReceivedBy      string    `json:"received_by" gorm:"type:varchar(100)"`
	CreatedAt       time.Time `json:"created_at"`

	Lines []GoodsReceiptLine `json:"lines,omitempty" gorm:"foreignKey:GoodsReceiptID"`
}

// GoodsReceiptLine is one (SKU, quantity, location) tuple of a receipt.
type GoodsReceiptLine struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	GoodsReceiptID uint   `json:"goods_receipt_id" gorm:"index;not null"`
	SKU            string `json:"sku" gorm:"type:varchar(100);not null"`
	Quantity       int    `json:"quantity" gorm:"not null;check:quantity > 0"`
	LocationID     uint   `json:"location_id" gorm:"not null"`
}
