package controllers

import (
	"net/http"
	"time"

	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
)

type LogEntryInput struct {
	FoodItemID    string   `json:"food_item_id" binding:"required"`
	MealType      string   `json:"meal_type" binding:"required"`
	QuantityGrams *float64 `json:"quantity_grams" binding:"required"`
	DateTime      string   `json:"date_time"`
}

// POST /diary/entries
func LogEntry(c *gin.Context) {
	userID := c.GetString("userID")

	var input LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	at := time.Now()
	if input.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, input.DateTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_time must be RFC3339"})
			return
		}
		at = parsed
	}

	svc := services.NewEntryService(config.DB)
	entry, err := svc.LogEntry(userID, input.FoodItemID, input.MealType, *input.QuantityGrams, at)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /diary/summary?date=YYYY-MM-DD (defaults to today)
func GetDailySummary(c *gin.Context) {
	userID := c.GetString("userID")

	at := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		at = parsed
	}

	svc := services.NewNutritionService(config.DB)
	summary, err := svc.DailySummary(userID, at)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
