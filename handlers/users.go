package handlers

import (
	"net/http"
	"strconv"

	"github.com/mdhaziqomar/memories/middleware"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
)

func ListUsers(c *gin.Context) {
	rows, err := getServices().User.List(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"users": rows})
}

// ListActiveUsers backs the tagging picker.
func ListActiveUsers(c *gin.Context) {
	users, err := getServices().User.ListActive(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}

	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		list = append(list, gin.H{
			"id":        u.ID,
			"username":  u.Username,
			"full_name": u.FullName,
		})
	}
	utils.Success(c, gin.H{"users": list})
}

func ToggleUserStatus(c *gin.Context) {
	adminID := c.GetUint(middleware.ContextUserID)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := getServices().User.ToggleStatus(c.Request.Context(), adminID, uint(targetID)); respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"message": "user status updated successfully"})
}
