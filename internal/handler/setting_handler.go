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
	"gorm.io/gorm/clause"
)

// SettingRequest defines the payload for updating a setting
type SettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// GetSetting returns one setting by key
func GetSetting(c echo.Context) error {
	key := c.Param("key")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var setting model.Setting
	if err := database.GetDB().Where("key = ?", key).First(&setting).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Setting not found"})
	}
	return c.JSON(http.StatusOK, setting)
}

// UpdateSetting creates or updates a setting. The approval threshold
// value must be a whole number of minor currency units; it takes effect
// on the next submit, never retroactively.
func UpdateSetting(c echo.Context) error {
	log := logger.FromContext(c)
	key := c.Param("key")

	var req SettingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Value == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "value is required"})
	}
	if key == model.SettingKeyApprovalThreshold {
		if _, err := strconv.ParseInt(req.Value, 10, 64); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "value must be an integer amount in minor currency units"})
		}
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	// Upsert on the key so two concurrent updates of the same setting
	// cannot race a read-then-create into a duplicate-key failure.
	setting := model.Setting{
		Key:       key,
		Value:     req.Value,
		UpdatedBy: actor(c),
	}
	err := database.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		log.Error("Failed to save setting", zap.String("key", key), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save setting"})
	}

	log.Info("Setting updated", zap.String("key", key), zap.String("value", req.Value))
	return c.JSON(http.StatusOK, setting)
}
