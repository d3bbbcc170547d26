package controllers

import (
	"net/http"

	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?scope=mine|public&q=egg
func SearchFoods(c *gin.Context) {
	userID := c.GetString("userID")
	scope := c.DefaultQuery("scope", services.ScopeMine)

	svc := services.NewFoodService(config.DB)
	items, err := svc.Search(userID, scope, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type CreateFoodInput struct {
	Name          string   `json:"name" binding:"required"`
	Calories      *float64 `json:"calories" binding:"required"`
	Proteins      float64  `json:"proteins"`
	Fats          float64  `json:"fats"`
	Carbohydrates float64  `json:"carbohydrates"`
}

// POST /food — always creates a private custom dish.
func CreateFood(c *gin.Context) {
	userID := c.GetString("userID")

	var input CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodService(config.DB)
	item, err := svc.CreateCustom(userID, input.Name, *input.Calories, input.Proteins, input.Fats, input.Carbohydrates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}
