// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error body the dashboard expects
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
