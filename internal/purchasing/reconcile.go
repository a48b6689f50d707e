package purchasing

import (
	"fmt"

	"purchasing-service/internal/model"
)

// ReceiptTuple is one (SKU, quantity, destination location) entry of a
// goods receipt.
type ReceiptTuple struct {
	SKU        string `json:"sku"`
	Quantity   int    `json:"quantity"`
	LocationID uint   `json:"location_id"`
}

// LineDelta is the planned change to one line item: how much to add and
// what the line will look like afterwards.
type LineDelta struct {
	LineItemID     uint
	SKU            string
	AddQty         int
	NewReceivedQty int
	OrderedQty     int
	OverReceived   bool
}

// InventoryDelta is the planned increment for one (location, SKU)
// inventory level.
type InventoryDelta struct {
	LocationID uint
	SKU        string
	AddQty     int
}

// ReceiptPlan is the computed effect of folding a receipt into a
// purchase order: per-line increments, per-location inventory
// increments, the over-received lines to surface to the caller, and the
// status the order ends up in.
type ReceiptPlan struct {
	LineDeltas       []LineDelta
	InventoryDeltas  []InventoryDelta
	OverReceivedSKUs []string
	FinalStatus      model.POStatus
}

// PlanReceipt reconciles receipt tuples against the order's line items.
// It is pure: nothing is written, the caller applies the plan in one
// transaction. Tuples for the same SKU accumulate onto the same line.
// A quantity that pushes a line past its ordered quantity is never
// blocked; the line is flagged over-received and reported in the plan.
// The order closes only when every line, touched or not, is fully
// received.
func PlanReceipt(lines []model.POLineItem, tuples []ReceiptTuple) (*ReceiptPlan, error) {
	if len(tuples) == 0 {
		return nil, fmt.Errorf("%w: receipt has no lines", ErrValidation)
	}

	bySKU := make(map[string]*model.POLineItem, len(lines))
	for i := range lines {
		bySKU[lines[i].SKU] = &lines[i]
	}

	addBySKU := make(map[string]int, len(tuples))
	invAdd := make(map[string]int, len(tuples))
	invOrder := make([]string, 0, len(tuples))
	invLoc := make(map[string]InventoryDelta, len(tuples))
	for _, t := range tuples {
		if t.SKU == "" {
			return nil, fmt.Errorf("%w: receipt line is missing a sku", ErrValidation)
		}
		if t.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for sku %q must be positive", ErrValidation, t.SKU)
		}
		if t.LocationID == 0 {
			return nil, fmt.Errorf("%w: receipt line for sku %q is missing a location", ErrValidation, t.SKU)
		}
		if _, ok := bySKU[t.SKU]; !ok {
			return nil, fmt.Errorf("%w: sku %q is not on this purchase order", ErrNotFound, t.SKU)
		}
		addBySKU[t.SKU] += t.Quantity

		key := fmt.Sprintf("%d/%s", t.LocationID, t.SKU)
		if _, seen := invAdd[key]; !seen {
			invOrder = append(invOrder, key)
			invLoc[key] = InventoryDelta{LocationID: t.LocationID, SKU: t.SKU}
		}
		invAdd[key] += t.Quantity
	}

	plan := &ReceiptPlan{}
	allReceived := true
	for i := range lines {
		line := &lines[i]
		add := addBySKU[line.SKU]
		newQty := line.ReceivedQty + add
		if add > 0 {
			over := newQty > line.OrderedQty
			plan.LineDeltas = append(plan.LineDeltas, LineDelta{
				LineItemID:     line.ID,
				SKU:            line.SKU,
				AddQty:         add,
				NewReceivedQty: newQty,
				OrderedQty:     line.OrderedQty,
				OverReceived:   over,
			})
			if over {
				plan.OverReceivedSKUs = append(plan.OverReceivedSKUs, line.SKU)
			}
		}
		if newQty < line.OrderedQty {
			allReceived = false
		}
	}

	for _, key := range invOrder {
		d := invLoc[key]
		d.AddQty = invAdd[key]
		plan.InventoryDeltas = append(plan.InventoryDeltas, d)
	}

	if allReceived {
		plan.FinalStatus = model.POStatusClosed
	} else {
		plan.FinalStatus = model.POStatusPartiallyReceived
	}
	return plan, nil
}
