package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"purchasing-service/internal/model"
	"purchasing-service/internal/purchasing"
	"purchasing-service/pkg/database"
	"purchasing-service/pkg/logger"
	"purchasing-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var poService *purchasing.Service

// Init wires the purchasing engine into the handler layer
func Init(svc *purchasing.Service) {
	poService = svc
}

// CreateDraftRequest defines the payload for creating a draft PO
type CreateDraftRequest struct {
	SupplierID uint                   `json:"supplier_id" validate:"required"`
	LineItems  []purchasing.DraftLine `json:"line_items"`
}

// UpdateLinesRequest defines the payload for replacing draft lines
type UpdateLinesRequest struct {
	LineItems []purchasing.DraftLine `json:"line_items" validate:"required"`
}

// RejectRequest carries the rejection note
type RejectRequest struct {
	Note string `json:"note"`
}

// ShipmentRequest defines the payload for registering a shipment
type ShipmentRequest struct {
	Carrier        string `json:"carrier" validate:"required"`
	TrackingNumber string `json:"tracking_number"`
}

// ReceiptRequest defines the payload for recording a goods receipt
type ReceiptRequest struct {
	Lines []purchasing.ReceiptTuple `json:"lines" validate:"required"`
}

// CreatePurchaseOrder creates a new draft purchase order
func CreatePurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("create_draft")

	var req CreateDraftRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.SupplierID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "supplier_id is required"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	po, err := poService.CreateDraft(c.Request().Context(), req.SupplierID, actor(c), req.LineItems)
	if err != nil {
		return respondError(c, log, err)
	}

	go updateOpenPOCount()

	log.Info("Purchase order draft created",
		zap.Uint("po_id", po.ID),
		zap.String("po_number", po.PONumber))
	return c.JSON(http.StatusCreated, po)
}

// ListPurchaseOrders lists purchase orders with status filter and pagination
func ListPurchaseOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("list")

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	opts := purchasing.ListOptions{
		Status: model.POStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	orders, total, err := poService.List(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"purchase_orders": orders,
		"pagination": echo.Map{
			"current_page": opts.Page,
			"limit":        opts.Limit,
			"total":        total,
		},
	})
}

// GetPurchaseOrder returns one purchase order with supplier, line
// items, events and shipments
func GetPurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("get")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	po, err := poService.GetDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, po)
}

// UpdatePurchaseOrderLines replaces the line items of a draft PO
func UpdatePurchaseOrderLines(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("update_lines")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	var req UpdateLinesRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	po, err := poService.UpdateDraftLines(c.Request().Context(), id, req.LineItems)
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Purchase order lines updated",
		zap.Uint("po_id", po.ID),
		zap.Int64("total_cents", po.TotalAmountCents))
	return c.JSON(http.StatusOK, po)
}

// SubmitPurchaseOrder submits a draft for approval
func SubmitPurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("submit")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	result, err := poService.Submit(c.Request().Context(), id, actor(c))
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Purchase order submitted",
		zap.Uint("po_id", id),
		zap.Bool("needs_approval", result.NeedsApproval),
		zap.String("status", string(result.PurchaseOrder.Status)))
	return c.JSON(http.StatusOK, echo.Map{
		"status":         result.PurchaseOrder.Status,
		"needs_approval": result.NeedsApproval,
		"purchase_order": result.PurchaseOrder,
	})
}

// ApprovePurchaseOrder approves a pending purchase order
func ApprovePurchaseOrder(c echo.Context) error {
	return transitionHandler(c, "approve", func(c echo.Context, id uint) (*model.PurchaseOrder, error) {
		return poService.Approve(c.Request().Context(), id, actor(c))
	})
}

// RejectPurchaseOrder sends a pending purchase order back to draft
func RejectPurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("reject")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	po, err := poService.Reject(c.Request().Context(), id, actor(c), req.Note)
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Purchase order rejected", zap.Uint("po_id", id))
	return c.JSON(http.StatusOK, echo.Map{"status": po.Status, "purchase_order": po})
}

// SendPurchaseOrder marks an approved purchase order as sent
func SendPurchaseOrder(c echo.Context) error {
	return transitionHandler(c, "send", func(c echo.Context, id uint) (*model.PurchaseOrder, error) {
		return poService.Send(c.Request().Context(), id, actor(c))
	})
}

// CancelPurchaseOrder cancels a purchase order
func CancelPurchaseOrder(c echo.Context) error {
	return transitionHandler(c, "cancel", func(c echo.Context, id uint) (*model.PurchaseOrder, error) {
		return poService.Cancel(c.Request().Context(), id, actor(c))
	})
}

// CreateShipment registers a carrier shipment against a purchase order
func CreateShipment(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("create_shipment")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	var req ShipmentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Carrier == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "carrier is required"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	shipment, err := poService.CreateShipment(c.Request().Context(), id, req.Carrier, req.TrackingNumber, actor(c))
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Shipment created",
		zap.Uint("po_id", id),
		zap.String("carrier", req.Carrier),
		zap.String("tracking_number", req.TrackingNumber))
	return c.JSON(http.StatusCreated, shipment)
}

// RecordReceipt folds a goods receipt into a purchase order
func RecordReceipt(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation("record_receipt")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	var req ReceiptRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	result, err := poService.RecordReceipt(c.Request().Context(), id, actor(c), req.Lines)
	if err != nil {
		return respondError(c, log, err)
	}

	for range req.Lines {
		prometheus.ReceiptLinesCounter.Inc()
	}
	for range result.OverReceivedLines {
		prometheus.OverReceiptsCounter.Inc()
	}
	go updateOpenPOCount()

	log.Info("Receipt recorded",
		zap.Uint("po_id", id),
		zap.String("status", string(result.Status)),
		zap.Strings("over_received_lines", result.OverReceivedLines))
	return c.JSON(http.StatusOK, echo.Map{
		"status":              result.Status,
		"over_received_lines": result.OverReceivedLines,
		"line_items":          result.PurchaseOrder.LineItems,
		"purchase_order":      result.PurchaseOrder,
	})
}

// transitionHandler is shared glue for single-step status transitions
func transitionHandler(c echo.Context, operation string, fn func(echo.Context, uint) (*model.PurchaseOrder, error)) error {
	log := logger.FromContext(c)
	prometheus.RecordPOOperation(operation)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	po, err := fn(c, id)
	if err != nil {
		return respondError(c, log, err)
	}

	go updateOpenPOCount()

	log.Info("Purchase order transition applied",
		zap.String("operation", operation),
		zap.Uint("po_id", id),
		zap.String("status", string(po.Status)))
	return c.JSON(http.StatusOK, echo.Map{"status": po.Status, "purchase_order": po})
}

// respondError maps engine error kinds to HTTP responses. Unexpected
// storage errors are logged but only a generic failure is returned.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var conflictErr *purchasing.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		prometheus.POStateConflictsCounter.Inc()
		return c.JSON(http.StatusConflict, echo.Map{
			"error":          conflictErr.Error(),
			"current_status": conflictErr.CurrentStatus,
		})
	case errors.Is(err, purchasing.ErrStateConflict):
		prometheus.POStateConflictsCounter.Inc()
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, purchasing.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, purchasing.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		log.Error("Unexpected storage error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// actor returns the authenticated operator identity set by the auth
// middleware
func actor(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok && email != "" {
		return email
	}
	return "unknown"
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// updateOpenPOCount refreshes the open purchase order gauge
func updateOpenPOCount() {
	var count int64
	database.GetDB().Model(&model.PurchaseOrder{}).
		Where("status NOT IN ?", []model.POStatus{model.POStatusClosed, model.POStatusCancelled}).
		Count(&count)
	prometheus.UpdateOpenPOs(int(count))
}
