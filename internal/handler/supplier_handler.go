package handler

import (
	"net/http"
	"strconv"
	"time"

	"purchasing-service/internal/model"
	"purchasing-service/pkg/database"
	"purchasing-service/pkg/logger"
	"purchasing-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SupplierRequest defines the structure for supplier creation/update requests
type SupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	Code          string `json:"code" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentTerms  string `json:"payment_terms"`
	Notes         string `json:"notes"`
	IsActive      bool   `json:"is_active"`
}

// SupplierProductRequest defines a catalog entry for a supplier SKU
type SupplierProductRequest struct {
	SKU           string `json:"sku" validate:"required"`
	Name          string `json:"name"`
	UnitCostCents int64  `json:"unit_cost_cents"`
	LeadTimeDays  int    `json:"lead_time_days"`
}

// CreateSupplier creates a new supplier
func CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and code are required"})
	}

	// Check if supplier with same code exists
	var count int64
	database.GetDB().Model(&model.Supplier{}).
		Where("code = ?", req.Code).
		Count(&count)
	if count > 0 {
		log.Warn("Supplier with this code already exists", zap.String("code", req.Code))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Supplier with this code already exists"})
	}

	supplier := model.Supplier{
		Name:          req.Name,
		Code:          req.Code,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
		Notes:         req.Notes,
		IsActive:      req.IsActive,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := database.GetDB().Create(&supplier).Error; err != nil {
		log.Error("Failed to create supplier", zap.String("code", req.Code), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create supplier"})
	}

	log.Info("Supplier created successfully",
		zap.Uint("id", supplier.ID),
		zap.String("name", supplier.Name),
		zap.String("code", supplier.Code))
	return c.JSON(http.StatusCreated, supplier)
}

// GetSupplier retrieves a supplier by ID with its product catalog
func GetSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var supplier model.Supplier
	if err := database.GetDB().Preload("Products").First(&supplier, id).Error; err != nil {
		log.Warn("Supplier not found", zap.Uint("supplier_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
	}
	return c.JSON(http.StatusOK, supplier)
}

// ListSuppliers retrieves suppliers with pagination and an optional
// active filter
func ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := database.GetDB().Model(&model.Supplier{})
	if isActive := c.QueryParam("is_active"); isActive != "" {
		if active, err := strconv.ParseBool(isActive); err == nil {
			query = query.Where("is_active = ?", active)
		}
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var suppliers []model.Supplier
	if err := query.Order("created_at desc").Limit(limit).Offset((page - 1) * limit).Find(&suppliers).Error; err != nil {
		log.Error("Failed to retrieve suppliers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve suppliers"})
	}

	var total int64
	query.Count(&total)

	return c.JSON(http.StatusOK, echo.Map{
		"suppliers": suppliers,
		"pagination": echo.Map{
			"current_page": page,
			"limit":        limit,
			"total":        total,
		},
	})
}

// UpdateSupplier updates an existing supplier
func UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var supplier model.Supplier
	if err := database.GetDB().First(&supplier, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
	}

	// Check if code is changed and if the new code already exists
	if req.Code != supplier.Code {
		var count int64
		database.GetDB().Model(&model.Supplier{}).
			Where("code = ? AND id != ?", req.Code, id).
			Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Supplier with this code already exists"})
		}
	}

	supplier.Name = req.Name
	supplier.Code = req.Code
	supplier.ContactPerson = req.ContactPerson
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Address = req.Address
	supplier.PaymentTerms = req.PaymentTerms
	supplier.Notes = req.Notes
	supplier.IsActive = req.IsActive

	defer prometheus.TrackDBOperation("update")(time.Now())

	if err := database.GetDB().Save(&supplier).Error; err != nil {
		log.Error("Failed to update supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update supplier"})
	}

	log.Info("Supplier updated successfully", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier soft deletes a supplier
func DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	var supplier model.Supplier
	if err := database.GetDB().First(&supplier, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := database.GetDB().Delete(&supplier).Error; err != nil {
		log.Error("Failed to delete supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete supplier"})
	}

	log.Info("Supplier deleted successfully", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier deleted successfully"})
}

// UpsertSupplierProduct creates or updates a supplier catalog entry
func UpsertSupplierProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	var req SupplierProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.SKU == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sku is required"})
	}

	var supplier model.Supplier
	if err := database.GetDB().First(&supplier, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	var product model.SupplierProduct
	result := database.GetDB().Where("supplier_id = ? AND sku = ?", id, req.SKU).First(&product)
	product.SupplierID = id
	product.SKU = req.SKU
	product.Name = req.Name
	product.UnitCostCents = req.UnitCostCents
	product.LeadTimeDays = req.LeadTimeDays

	if result.Error != nil {
		if err := database.GetDB().Create(&product).Error; err != nil {
			log.Error("Failed to create supplier product", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save supplier product"})
		}
		return c.JSON(http.StatusCreated, product)
	}
	if err := database.GetDB().Save(&product).Error; err != nil {
		log.Error("Failed to update supplier product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save supplier product"})
	}
	return c.JSON(http.StatusOK, product)
}

// ListSupplierProducts lists the catalog of one supplier
func ListSupplierProducts(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var products []model.SupplierProduct
	if err := database.GetDB().Where("supplier_id = ?", id).Order("sku").Find(&products).Error; err != nil {
		log.Error("Failed to retrieve supplier products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve supplier products"})
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}
