package handlers

import (
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "memories",
	})
}
