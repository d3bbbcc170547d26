package controllers

import (
	"net/http"

	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
)

// GET /access/state?editing=true
func GetAccessState(c *gin.Context) {
	userID := c.GetString("userID")
	editing := c.Query("editing") == "true"

	svc := services.NewAccessService(config.DB)
	snap, err := svc.ResolveAccess(userID, editing)
	if err != nil {
		// the machine stays in loading; surface the read failure
		c.JSON(http.StatusServiceUnavailable, gin.H{"state": snap.State, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

type SelectRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// POST /access/role
func SelectRole(c *gin.Context) {
	userID := c.GetString("userID")

	var input SelectRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAccessService(config.DB)
	snap, err := svc.SelectRole(userID, input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}
