package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "CRM Backend is running",
	})
}
