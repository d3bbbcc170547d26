package controllers

import (
	"net/http"
	"strconv"

	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
)

type ApplicationInput struct {
	CredentialsDetails string `json:"credentials_details" binding:"required"`
}

// POST /trainer/application
func SubmitTrainerApplication(c *gin.Context) {
	userID := c.GetString("userID")

	var input ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewTrainerService(config.DB)
	app, err := svc.SubmitApplication(userID, input.CredentialsDetails)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GET /trainer/application
func GetTrainerApplication(c *gin.Context) {
	userID := c.GetString("userID")

	svc := services.NewTrainerService(config.DB)
	app, err := svc.GetApplication(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

type DecisionInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// POST /admin/trainer-applications/:id/decision — the administrator action
// that owns status transitions.
func DecideTrainerApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	var input DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewTrainerService(config.DB)
	app, err := svc.Decide(uint(id), input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}
