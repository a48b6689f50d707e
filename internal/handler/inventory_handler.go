package handler

import (
	"net/http"
	"time"

	"purchasing-service/internal/model"
	"purchasing-service/pkg/database"
	"purchasing-service/pkg/logger"
	"purchasing-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LocationRequest defines the payload for creating/updating a location
type LocationRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

// CreateLocation creates a new inventory location
func CreateLocation(c echo.Context) error {
	log := logger.FromContext(c)

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	var count int64
	database.GetDB().Model(&model.InventoryLocation{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Location with this name already exists"})
	}

	location := model.InventoryLocation{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := database.GetDB().Create(&location).Error; err != nil {
		log.Error("Failed to create location", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create location"})
	}

	log.Info("Location created successfully",
		zap.Uint("id", location.ID), zap.String("name", location.Name))
	return c.JSON(http.StatusCreated, location)
}

// ListLocations lists all inventory locations
func ListLocations(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())

	var locations []model.InventoryLocation
	if err := database.GetDB().Order("name").Find(&locations).Error; err != nil {
		log.Error("Failed to retrieve locations", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve locations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"locations": locations})
}

// GetLocationLevels lists the on-hand quantities at one location
func GetLocationLevels(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid location ID"})
	}

	var location model.InventoryLocation
	if err := database.GetDB().First(&location, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var levels []model.InventoryLevel
	if err := database.GetDB().Where("location_id = ?", id).Order("sku").Find(&levels).Error; err != nil {
		log.Error("Failed to retrieve inventory levels",
			zap.Uint("location_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve inventory levels"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"location": location,
		"levels":   levels,
	})
}

// ListInventoryLevels lists on-hand quantities across locations, with
// an optional SKU filter
func ListInventoryLevels(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Model(&model.InventoryLevel{}).Preload("Location")
	if sku := c.QueryParam("sku"); sku != "" {
		query = query.Where("sku = ?", sku)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var levels []model.InventoryLevel
	if err := query.Order("sku").Find(&levels).Error; err != nil {
		log.Error("Failed to retrieve inventory levels", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve inventory levels"})
	}
	return c.JSON(http.StatusOK, echo.Map{"levels": levels})
}
