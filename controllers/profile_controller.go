package controllers

import (
	"net/http"

	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	Age      *int     `json:"age" binding:"required"`
	WeightKg *float64 `json:"weight_kg" binding:"required"`
	HeightCm *float64 `json:"height_cm" binding:"required"`
	Gender   string   `json:"gender" binding:"required,oneof=male female"`
	Goal     string   `json:"goal" binding:"required,oneof=lose_weight maintain gain_muscle"`
}

func GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	svc := services.NewProfileService(config.DB)
	profile, err := svc.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /profile — submit or resubmit the onboarding profile. Derived fields
// are always recomputed server-side.
func SubmitProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewProfileService(config.DB)
	profile, err := svc.Submit(userID, *input.Age, *input.WeightKg, *input.HeightCm, input.Gender, input.Goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
