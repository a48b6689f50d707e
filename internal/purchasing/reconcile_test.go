package purchasing

import (
	"errors"
	"testing"

	"purchasing-service/internal/model"
)

func orderLines() []model.POLineItem {
	return []model.POLineItem{
		{ID: 1, PurchaseOrderID: 9, SKU: "A", OrderedQty: 10, UnitCostCents: 250},
		{ID: 2, PurchaseOrderID: 9, SKU: "B", OrderedQty: 5, UnitCostCents: 900},
	}
}

// applyPlan folds a plan's line deltas back into the lines, the way the
// database increments would, so multi-receipt sequences can be tested.
func applyPlan(lines []model.POLineItem, plan *ReceiptPlan) []model.POLineItem {
	for i := range lines {
		for _, d := range plan.LineDeltas {
			if d.LineItemID == lines[i].ID {
				lines[i].ReceivedQty += d.AddQty
				if d.OverReceived {
					lines[i].OverReceived = true
				}
			}
		}
	}
	return lines
}

func TestPlanReceiptFullReceiptCloses(t *testing.T) {
	plan, err := PlanReceipt(orderLines(), []ReceiptTuple{
		{SKU: "A", Quantity: 10, LocationID: 1},
		{SKU: "B", Quantity: 5, LocationID: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.FinalStatus != model.POStatusClosed {
		t.Errorf("status = %s, want closed", plan.FinalStatus)
	}
	if len(plan.OverReceivedSKUs) != 0 {
		t.Errorf("expected no over-received lines, got %v", plan.OverReceivedSKUs)
	}
	if len(plan.LineDeltas) != 2 {
		t.Fatalf("expected 2 line deltas, got %d", len(plan.LineDeltas))
	}
	for _, d := range plan.LineDeltas {
		if d.NewReceivedQty != d.OrderedQty {
			t.Errorf("line %s: received %d, want %d", d.SKU, d.NewReceivedQty, d.OrderedQty)
		}
	}
}

func TestPlanReceiptPartialThenComplete(t *testing.T) {
	lines := orderLines()

	first, err := PlanReceipt(lines, []ReceiptTuple{{SKU: "A", Quantity: 4, LocationID: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if first.FinalStatus != model.POStatusPartiallyReceived {
		t.Fatalf("after first receipt status = %s, want partially_received", first.FinalStatus)
	}
	lines = applyPlan(lines, first)

	second, err := PlanReceipt(lines, []ReceiptTuple{
		{SKU: "A", Quantity: 6, LocationID: 1},
		{SKU: "B", Quantity: 5, LocationID: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.FinalStatus != model.POStatusClosed {
		t.Errorf("after second receipt status = %s, want closed", second.FinalStatus)
	}
	lines = applyPlan(lines, second)

	if lines[0].ReceivedQty != 10 {
		t.Errorf("line A received %d, want 10", lines[0].ReceivedQty)
	}
	if lines[0].OverReceived {
		t.Error("line A should not be flagged over-received")
	}
}

func TestPlanReceiptDisjointReceiptsCloseInSequence(t *testing.T) {
	// Two receipts each fulfill a different line; neither alone closes
	// the order. Receipts against one order apply one at a time, so the
	// second plans against the first's applied increments and must be
	// the one that closes.
	lines := orderLines()

	first, err := PlanReceipt(lines, []ReceiptTuple{{SKU: "A", Quantity: 10, LocationID: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if first.FinalStatus != model.POStatusPartiallyReceived {
		t.Fatalf("first receipt status = %s, want partially_received", first.FinalStatus)
	}
	lines = applyPlan(lines, first)

	second, err := PlanReceipt(lines, []ReceiptTuple{{SKU: "B", Quantity: 5, LocationID: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if second.FinalStatus != model.POStatusClosed {
		t.Errorf("second receipt status = %s, want closed", second.FinalStatus)
	}
}

func TestPlanReceiptSplitEqualsSingle(t *testing.T) {
	// Receiving 4 then 6 must land in the same place as a single 10.
	split := orderLines()
	first, err := PlanReceipt(split, []ReceiptTuple{{SKU: "A", Quantity: 4, LocationID: 1}})
	if err != nil {
		t.Fatal(err)
	}
	split = applyPlan(split, first)
	second, err := PlanReceipt(split, []ReceiptTuple{{SKU: "A", Quantity: 6, LocationID: 1}})
	if err != nil {
		t.Fatal(err)
	}
	split = applyPlan(split, second)

	single := orderLines()
	whole, err := PlanReceipt(single, []ReceiptTuple{{SKU: "A", Quantity: 10, LocationID: 1}})
	if err != nil {
		t.Fatal(err)
	}
	single = applyPlan(single, whole)

	if split[0].ReceivedQty != single[0].ReceivedQty {
		t.Errorf("split receipts yield %d, single receipt yields %d",
			split[0].ReceivedQty, single[0].ReceivedQty)
	}
}

func TestPlanReceiptOverReceipt(t *testing.T) {
	plan, err := PlanReceipt(orderLines(), []ReceiptTuple{{SKU: "A", Quantity: 12, LocationID: 1}})
	if err != nil {
		t.Fatalf("over-receipt must not fail: %v", err)
	}

	if len(plan.OverReceivedSKUs) != 1 || plan.OverReceivedSKUs[0] != "A" {
		t.Errorf("expected over-received [A], got %v", plan.OverReceivedSKUs)
	}
	if plan.LineDeltas[0].NewReceivedQty != 12 {
		t.Errorf("received = %d, want 12", plan.LineDeltas[0].NewReceivedQty)
	}
	// Line B is still open, so the order must not close.
	if plan.FinalStatus != model.POStatusPartiallyReceived {
		t.Errorf("status = %s, want partially_received", plan.FinalStatus)
	}
}

func TestPlanReceiptOverReceiptOnLastLineCloses(t *testing.T) {
	lines := orderLines()
	lines[1].ReceivedQty = 5

	plan, err := PlanReceipt(lines, []ReceiptTuple{{SKU: "A", Quantity: 12, LocationID: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if plan.FinalStatus != model.POStatusClosed {
		t.Errorf("status = %s, want closed", plan.FinalStatus)
	}
	if len(plan.OverReceivedSKUs) != 1 {
		t.Errorf("expected over-received [A], got %v", plan.OverReceivedSKUs)
	}
}

func TestPlanReceiptAccumulatesTuples(t *testing.T) {
	plan, err := PlanReceipt(orderLines(), []ReceiptTuple{
		{SKU: "A", Quantity: 3, LocationID: 1},
		{SKU: "A", Quantity: 4, LocationID: 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(plan.LineDeltas) != 1 {
		t.Fatalf("expected a single combined line delta, got %d", len(plan.LineDeltas))
	}
	if plan.LineDeltas[0].AddQty != 7 {
		t.Errorf("combined add = %d, want 7", plan.LineDeltas[0].AddQty)
	}

	if len(plan.InventoryDeltas) != 2 {
		t.Fatalf("expected 2 inventory deltas, got %d", len(plan.InventoryDeltas))
	}
	byLoc := map[uint]int{}
	for _, d := range plan.InventoryDeltas {
		byLoc[d.LocationID] = d.AddQty
	}
	if byLoc[1] != 3 || byLoc[2] != 4 {
		t.Errorf("inventory deltas = %v, want {1:3, 2:4}", byLoc)
	}
}

func TestPlanReceiptMergesSameLocationTuples(t *testing.T) {
	plan, err := PlanReceipt(orderLines(), []ReceiptTuple{
		{SKU: "A", Quantity: 2, LocationID: 1},
		{SKU: "A", Quantity: 3, LocationID: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.InventoryDeltas) != 1 {
		t.Fatalf("expected 1 merged inventory delta, got %d", len(plan.InventoryDeltas))
	}
	if plan.InventoryDeltas[0].AddQty != 5 {
		t.Errorf("merged inventory add = %d, want 5", plan.InventoryDeltas[0].AddQty)
	}
}

func TestPlanReceiptValidation(t *testing.T) {
	tests := []struct {
		name   string
		tuples []ReceiptTuple
		want   error
	}{
		{"empty receipt", nil, ErrValidation},
		{"missing sku", []ReceiptTuple{{Quantity: 1, LocationID: 1}}, ErrValidation},
		{"zero quantity", []ReceiptTuple{{SKU: "A", Quantity: 0, LocationID: 1}}, ErrValidation},
		{"negative quantity", []ReceiptTuple{{SKU: "A", Quantity: -2, LocationID: 1}}, ErrValidation},
		{"missing location", []ReceiptTuple{{SKU: "A", Quantity: 1}}, ErrValidation},
		{"unknown sku", []ReceiptTuple{{SKU: "Z", Quantity: 1, LocationID: 1}}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanReceipt(orderLines(), tt.tuples)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
