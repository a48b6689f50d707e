package purchasing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"purchasing-service/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the purchase order lifecycle and receiving engine. All
// mutations run inside a single transaction per operation; status
// changes are compare-and-swap on the previously read status and
// quantity changes are SQL-side increments, so concurrent callers can
// never silently overwrite each other. A lost race surfaces as
// ErrStateConflict and the caller decides whether to retry.
type Service struct {
	db                    *gorm.DB
	log                   *zap.Logger
	defaultThresholdCents int64
}

// NewService creates the purchasing engine. defaultThresholdCents is
// used when no approval threshold setting exists in the database.
func NewService(db *gorm.DB, log *zap.Logger, defaultThresholdCents int64) *Service {
	return &Service{
		db:                    db,
		log:                   log,
		defaultThresholdCents: defaultThresholdCents,
	}
}

// DraftLine is one requested line of a draft purchase order. A zero
// unit cost is filled in from the supplier's product catalog when the
// SKU is listed there.
type DraftLine struct {
	SKU           string `json:"sku"`
	OrderedQty    int    `json:"ordered_qty"`
	UnitCostCents int64  `json:"unit_cost_cents"`
}

// SubmitResult reports the branch the approval policy took.
type SubmitResult struct {
	PurchaseOrder *model.PurchaseOrder `json:"purchase_order"`
	NeedsApproval bool                 `json:"needs_approval"`
}

// ReceiptResult is the outcome of folding one receipt into an order.
type ReceiptResult struct {
	PurchaseOrder     *model.PurchaseOrder `json:"purchase_order"`
	Status            model.POStatus       `json:"status"`
	OverReceivedLines []string             `json:"over_received_lines"`
}

// CreateDraft creates a purchase order in draft with the given lines.
// The PO number is allocated from the per-month sequence; if two
// creations race onto the same number the unique index rejects one and
// the allocation is retried.
func (s *Service) CreateDraft(ctx context.Context, supplierID uint, actor string, lines []DraftLine) (*model.PurchaseOrder, error) {
	var supplier model.Supplier
	if err := s.db.WithContext(ctx).First(&supplier, supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: supplier %d", ErrNotFound, supplierID)
		}
		return nil, err
	}

	items, err := s.buildLineItems(ctx, supplierID, lines)
	if err != nil {
		return nil, err
	}

	var po *model.PurchaseOrder
	for attempt := 0; ; attempt++ {
		po, err = s.createDraftOnce(ctx, supplierID, actor, items)
		if err == nil {
			break
		}
		// Concurrent creation in the same month can collide on the
		// number; the unique index rejects the loser, which re-reads
		// the sequence and tries again.
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt == 0 {
			s.log.Warn("po number collision, retrying allocation",
				zap.Uint("supplier_id", supplierID))
			continue
		}
		return nil, err
	}

	s.log.Info("purchase order draft created",
		zap.Uint("po_id", po.ID),
		zap.String("po_number", po.PONumber),
		zap.Uint("supplier_id", supplierID),
		zap.Int64("total_cents", po.TotalAmountCents))
	return po, nil
}

func (s *Service) createDraftOnce(ctx context.Context, supplierID uint, actor string, items []model.POLineItem) (*model.PurchaseOrder, error) {
	po := &model.PurchaseOrder{
		SupplierID: supplierID,
		Status:     model.POStatusDraft,
		CreatedBy:  actor,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := s.allocatePONumber(tx, time.Now())
		if err != nil {
			return err
		}
		po.PONumber = number
		po.TotalAmountCents = totalCents(items)
		if err := tx.Create(po).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = po.ID
			items[i].SortOrder = i
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	po.LineItems = items
	return po, nil
}

// allocatePONumber reads the greatest existing number with the current
// month's prefix and increments it. Runs inside the caller's
// transaction; uniqueness is ultimately enforced by the index. Numbers
// past 999 outgrow the zero padding, so the max is ordered by length
// before value; a plain lexicographic sort would rank 999 above 1000.
func (s *Service) allocatePONumber(tx *gorm.DB, now time.Time) (string, error) {
	var numbers []string
	err := tx.Model(&model.PurchaseOrder{}).
		Where("po_number LIKE ?", MonthPrefix(now)+"%").
		Order("length(po_number) DESC, po_number DESC").
		Limit(1).
		Pluck("po_number", &numbers).Error
	if err != nil {
		return "", err
	}
	last := ""
	if len(numbers) > 0 {
		last = numbers[0]
	}
	return NextPONumber(last, now)
}

// UpdateDraftLines replaces the line items of a draft order and
// recomputes its total. Only legal while the order is still a draft.
func (s *Service) UpdateDraftLines(ctx context.Context, poID uint, lines []DraftLine) (*model.PurchaseOrder, error) {
	po, err := s.loadOrder(ctx, poID, true)
	if err != nil {
		return nil, err
	}
	if po.Status != model.POStatusDraft {
		return nil, conflict(po.ID, po.Status, EventEdit)
	}

	items, err := s.buildLineItems(ctx, po.SupplierID, lines)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: a purchase order needs at least one line item", ErrValidation)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", po.ID).Delete(&model.POLineItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = po.ID
			items[i].SortOrder = i
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		res := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND status = ?", po.ID, model.POStatusDraft).
			Update("total_amount_cents", totalCents(items))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.conflictWithCurrent(tx, po.ID, EventEdit)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, poID)
}

// Submit moves a draft into the approval flow. The total is recomputed
// from the lines and frozen, the approval threshold is read at this
// moment, and a submitted event records which branch was taken.
func (s *Service) Submit(ctx context.Context, poID uint, actor string) (*SubmitResult, error) {
	po, err := s.loadOrder(ctx, poID, true)
	if err != nil {
		return nil, err
	}
	if !CanTransition(po.Status, EventSubmit) {
		return nil, conflict(po.ID, po.Status, EventSubmit)
	}
	if len(po.LineItems) == 0 {
		return nil, fmt.Errorf("%w: cannot submit a purchase order without line items", ErrValidation)
	}

	total := totalCents(po.LineItems)
	threshold := s.approvalThreshold(ctx)
	decision := EvaluateApproval(total, threshold)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":             decision.Status,
			"total_amount_cents": total,
		}
		if !decision.NeedsApproval {
			updates["approved_by"] = "system"
			updates["approved_at"] = time.Now()
		}
		res := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND status = ?", po.ID, model.POStatusDraft).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.conflictWithCurrent(tx, po.ID, EventSubmit)
		}
		return appendEvent(tx, po.ID, model.POEventSubmitted, actor, decision.AuditNote)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase order submitted",
		zap.Uint("po_id", po.ID),
		zap.String("po_number", po.PONumber),
		zap.Int64("total_cents", total),
		zap.Bool("needs_approval", decision.NeedsApproval))

	detail, err := s.GetDetail(ctx, poID)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{PurchaseOrder: detail, NeedsApproval: decision.NeedsApproval}, nil
}

// Approve moves a pending order to approved, recording the approver.
func (s *Service) Approve(ctx context.Context, poID uint, actor string) (*model.PurchaseOrder, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: approver identity is required", ErrValidation)
	}
	err := s.applyTransition(ctx, poID, EventApprove, model.POStatusPendingApproval, model.POStatusApproved,
		map[string]interface{}{"approved_by": actor, "approved_at": time.Now()},
		model.POEventApproved, actor, "approved by "+actor)
	if err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, poID)
}

// Reject sends a pending order back to draft so it can be edited and
// resubmitted.
func (s *Service) Reject(ctx context.Context, poID uint, actor, note string) (*model.PurchaseOrder, error) {
	if note == "" {
		note = "rejected by " + actor
	}
	err := s.applyTransition(ctx, poID, EventReject, model.POStatusPendingApproval, model.POStatusDraft,
		nil, model.POEventRejected, actor, note)
	if err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, poID)
}

// Send marks an approved order as dispatched to the supplier. Fails
// with a state conflict for anything other than an approved order.
func (s *Service) Send(ctx context.Context, poID uint, actor string) (*model.PurchaseOrder, error) {
	err := s.applyTransition(ctx, poID, EventSend, model.POStatusApproved, model.POStatusSent,
		map[string]interface{}{"sent_at": time.Now()},
		model.POEventSent, actor, "sent to supplier")
	if err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, poID)
}

// Cancel cancels an order that has not started receiving yet.
func (s *Service) Cancel(ctx context.Context, poID uint, actor string) (*model.PurchaseOrder, error) {
	po, err := s.loadOrder(ctx, poID, false)
	if err != nil {
		return nil, err
	}
	if !CanTransition(po.Status, EventCancel) {
		return nil, conflict(po.ID, po.Status, EventCancel)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND status = ?", po.ID, po.Status).
			Update("status", model.POStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.conflictWithCurrent(tx, po.ID, EventCancel)
		}
		return appendEvent(tx, po.ID, model.POEventCancelled, actor, "cancelled while "+string(po.Status))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase order cancelled",
		zap.Uint("po_id", po.ID), zap.String("po_number", po.PONumber))
	return s.GetDetail(ctx, poID)
}

// CreateShipment registers a carrier shipment against an order that is
// on its way, and appends a shipment_created event.
func (s *Service) CreateShipment(ctx context.Context, poID uint, carrier, trackingNumber, actor string) (*model.Shipment, error) {
	po, err := s.loadOrder(ctx, poID, false)
	if err != nil {
		return nil, err
	}
	switch po.Status {
	case model.POStatusApproved, model.POStatusSent, model.POStatusPartiallyReceived:
	default:
		return nil, conflict(po.ID, po.Status, EventCreateShipment)
	}

	shipment := &model.Shipment{
		PurchaseOrderID: po.ID,
		Carrier:         carrier,
		TrackingNumber:  trackingNumber,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shipment).Error; err != nil {
			return err
		}
		note := fmt.Sprintf("shipment via %s, tracking %s", carrier, trackingNumber)
		return appendEvent(tx, po.ID, model.POEventShipmentCreated, actor, note)
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// RecordReceipt folds one goods receipt into the order: line item
// received quantities and (location, SKU) inventory levels are
// incremented in SQL, the receipt is stored as an immutable fact, and
// the order moves to partially_received or closed depending on whether
// every line is now fully received. The whole receipt applies
// atomically; any failure leaves order and inventory untouched.
func (s *Service) RecordReceipt(ctx context.Context, poID uint, actor string, tuples []ReceiptTuple) (*ReceiptResult, error) {
	po, err := s.loadOrder(ctx, poID, true)
	if err != nil {
		return nil, err
	}
	if !CanTransition(po.Status, EventRecordReceipt) {
		return nil, conflict(po.ID, po.Status, EventRecordReceipt)
	}

	plan, err := PlanReceipt(po.LineItems, tuples)
	if err != nil {
		return nil, err
	}

	var finalStatus model.POStatus
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the order row first so receipts against the same order
		// apply one at a time. Without this, two receipts that together
		// fulfill the order could each recount before seeing the other's
		// increments and both settle on partially_received.
		var locked model.PurchaseOrder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "status").First(&locked, po.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: purchase order %d", ErrNotFound, po.ID)
			}
			return err
		}
		if !CanTransition(locked.Status, EventRecordReceipt) {
			return conflict(po.ID, locked.Status, EventRecordReceipt)
		}

		receipt := &model.GoodsReceipt{
			Reference:       "GR-" + uuid.New().String(),
			PurchaseOrderID: po.ID,
			ReceivedBy:      actor,
		}
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}
		receiptLines := make([]model.GoodsReceiptLine, 0, len(tuples))
		for _, t := range tuples {
			receiptLines = append(receiptLines, model.GoodsReceiptLine{
				GoodsReceiptID: receipt.ID,
				SKU:            t.SKU,
				Quantity:       t.Quantity,
				LocationID:     t.LocationID,
			})
		}
		if err := tx.Create(&receiptLines).Error; err != nil {
			return err
		}

		// SQL-side increments; the over_received flag is computed from
		// the in-row values so a concurrent receipt on the same line
		// cannot be lost or double counted.
		for _, d := range plan.LineDeltas {
			res := tx.Model(&model.POLineItem{}).
				Where("id = ?", d.LineItemID).
				Updates(map[string]interface{}{
					"received_qty":  gorm.Expr("received_qty + ?", d.AddQty),
					"over_received": gorm.Expr("received_qty + ? > ordered_qty", d.AddQty),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: line item %d", ErrNotFound, d.LineItemID)
			}
		}

		for _, d := range plan.InventoryDeltas {
			level := model.InventoryLevel{
				LocationID: d.LocationID,
				SKU:        d.SKU,
				Quantity:   d.AddQty,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "location_id"}, {Name: "sku"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity":   gorm.Expr("inventory_levels.quantity + EXCLUDED.quantity"),
					"updated_at": time.Now(),
				}),
			}).Create(&level).Error
			if err != nil {
				return err
			}
		}

		// Fulfillment is recomputed from the rows as they now stand,
		// not from the pre-receipt snapshot, so two concurrent partial
		// receipts still close the order exactly once.
		var remaining int64
		err = tx.Model(&model.POLineItem{}).
			Where("purchase_order_id = ? AND received_qty < ordered_qty", po.ID).
			Count(&remaining).Error
		if err != nil {
			return err
		}
		finalStatus = model.POStatusPartiallyReceived
		eventType := model.POEventReceiptRecorded
		note := fmt.Sprintf("receipt %s: %d line(s) received", receipt.Reference, len(plan.LineDeltas))
		if remaining == 0 {
			finalStatus = model.POStatusClosed
			eventType = model.POEventClosed
			note = fmt.Sprintf("receipt %s: all lines fully received", receipt.Reference)
		}

		res := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND status IN ?", po.ID,
				[]model.POStatus{model.POStatusSent, model.POStatusPartiallyReceived}).
			Update("status", finalStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.conflictWithCurrent(tx, po.ID, EventRecordReceipt)
		}
		return appendEvent(tx, po.ID, eventType, actor, note)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("receipt recorded",
		zap.Uint("po_id", po.ID),
		zap.String("po_number", po.PONumber),
		zap.String("status", string(finalStatus)),
		zap.Strings("over_received", plan.OverReceivedSKUs))

	detail, err := s.GetDetail(ctx, poID)
	if err != nil {
		return nil, err
	}
	return &ReceiptResult{
		PurchaseOrder:     detail,
		Status:            detail.Status,
		OverReceivedLines: plan.OverReceivedSKUs,
	}, nil
}

// GetDetail loads an order with its supplier, lines, events and
// shipments.
func (s *Service) GetDetail(ctx context.Context, poID uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := s.db.WithContext(ctx).
		Preload("Supplier").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Preload("Shipments").
		First(&po, poID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase order %d", ErrNotFound, poID)
		}
		return nil, err
	}
	return &po, nil
}

// ListOptions filters and paginates the purchase order list.
type ListOptions struct {
	Status model.POStatus
	Page   int
	Limit  int
}

// List returns purchase orders, newest first, with the total count.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]model.PurchaseOrder, int64, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&model.PurchaseOrder{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.PurchaseOrder
	err := query.Preload("Supplier").
		Order("created_at DESC").
		Limit(opts.Limit).
		Offset((opts.Page - 1) * opts.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// approvalThreshold reads the threshold setting at call time; a missing
// or malformed setting falls back to the configured default. Not cached
// so a threshold change takes effect on the next submit and never
// retroactively.
func (s *Service) approvalThreshold(ctx context.Context) int64 {
	var setting model.Setting
	err := s.db.WithContext(ctx).
		Where("key = ?", model.SettingKeyApprovalThreshold).
		First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("failed to read approval threshold setting", zap.Error(err))
		}
		return s.defaultThresholdCents
	}
	threshold, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil {
		s.log.Warn("malformed approval threshold setting, using default",
			zap.String("value", setting.Value), zap.Error(err))
		return s.defaultThresholdCents
	}
	return threshold
}

// applyTransition performs a single-from, single-to status transition
// with a compare-and-swap on the expected status and appends exactly
// one event in the same transaction.
func (s *Service) applyTransition(ctx context.Context, poID uint, event TransitionEvent,
	from, to model.POStatus, extra map[string]interface{},
	eventType model.POEventType, actor, note string) error {

	po, err := s.loadOrder(ctx, poID, false)
	if err != nil {
		return err
	}
	if !CanTransition(po.Status, event) {
		return conflict(po.ID, po.Status, event)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": to}
		for k, v := range extra {
			updates[k] = v
		}
		res := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND status = ?", poID, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.conflictWithCurrent(tx, poID, event)
		}
		return appendEvent(tx, poID, eventType, actor, note)
	})
	if err != nil {
		return err
	}

	s.log.Info("purchase order transition",
		zap.Uint("po_id", poID),
		zap.String("event", string(event)),
		zap.String("to", string(to)),
		zap.String("actor", actor))
	return nil
}

// conflictWithCurrent re-reads the order's actual status after a
// compare-and-swap found zero matching rows, so the caller learns what
// it lost the race to.
func (s *Service) conflictWithCurrent(tx *gorm.DB, poID uint, event TransitionEvent) error {
	var po model.PurchaseOrder
	if err := tx.Select("id", "status").First(&po, poID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: purchase order %d", ErrNotFound, poID)
		}
		return err
	}
	return conflict(po.ID, po.Status, event)
}

func (s *Service) loadOrder(ctx context.Context, poID uint, withLines bool) (*model.PurchaseOrder, error) {
	query := s.db.WithContext(ctx)
	if withLines {
		query = query.Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") })
	}
	var po model.PurchaseOrder
	if err := query.First(&po, poID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase order %d", ErrNotFound, poID)
		}
		return nil, err
	}
	return &po, nil
}

// buildLineItems validates draft lines and resolves zero unit costs
// from the supplier's product catalog.
func (s *Service) buildLineItems(ctx context.Context, supplierID uint, lines []DraftLine) ([]model.POLineItem, error) {
	seen := make(map[string]bool, len(lines))
	items := make([]model.POLineItem, 0, len(lines))
	for _, l := range lines {
		if l.SKU == "" {
			return nil, fmt.Errorf("%w: line item is missing a sku", ErrValidation)
		}
		if seen[l.SKU] {
			return nil, fmt.Errorf("%w: duplicate sku %q", ErrValidation, l.SKU)
		}
		seen[l.SKU] = true
		if l.OrderedQty <= 0 {
			return nil, fmt.Errorf("%w: ordered quantity for sku %q must be positive", ErrValidation, l.SKU)
		}
		if l.UnitCostCents < 0 {
			return nil, fmt.Errorf("%w: unit cost for sku %q cannot be negative", ErrValidation, l.SKU)
		}
		cost := l.UnitCostCents
		if cost == 0 {
			var product model.SupplierProduct
			err := s.db.WithContext(ctx).
				Where("supplier_id = ? AND sku = ?", supplierID, l.SKU).
				First(&product).Error
			if err == nil {
				cost = product.UnitCostCents
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		items = append(items, model.POLineItem{
			SKU:           l.SKU,
			OrderedQty:    l.OrderedQty,
			UnitCostCents: cost,
		})
	}
	return items, nil
}

func totalCents(items []model.POLineItem) int64 {
	var total int64
	for i := range items {
		total += items[i].ExtendedCostCents()
	}
	return total
}

func appendEvent(tx *gorm.DB, poID uint, eventType model.POEventType, actor, note string) error {
	return tx.Create(&model.POEvent{
		PurchaseOrderID: poID,
		EventType:       eventType,
		Actor:           actor,
		Note:            note,
	}).Error
}
