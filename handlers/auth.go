package handlers

import (
	"net/http"

	"github.com/mdhaziqomar/memories/middleware"
	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/services"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Username   string `json:"username" binding:"required,min=3,max=50,alphanum"`
	FullName   string `json:"full_name" binding:"required,min=2"`
	InviteCode string `json:"invite_code" binding:"required"`
}

type InviteCodeRequest struct {
	ExpiresInDays int `json:"expires_in_days" binding:"required"`
}

func userPayload(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
	}
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := getServices().Auth.Login(c.Request.Context(), req.Email, req.Password)
	if respondServiceError(c, err) {
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "generate token failed")
		return
	}

	utils.Success(c, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := getServices().Auth.Register(c.Request.Context(), services.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Username:   req.Username,
		FullName:   req.FullName,
		InviteCode: req.InviteCode,
	})
	if respondServiceError(c, err) {
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "generate token failed")
		return
	}

	utils.Created(c, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

func CreateInviteCode(c *gin.Context) {
	adminID := c.GetUint(middleware.ContextUserID)

	var req InviteCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	out, err := getServices().Auth.CreateInviteCode(c.Request.Context(), adminID, req.ExpiresInDays)
	if respondServiceError(c, err) {
		return
	}

	utils.Created(c, out)
}

func GetProfile(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	user, err := getServices().Auth.GetProfile(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"full_name":     user.FullName,
		"role":          user.Role,
		"profile_image": user.ProfileImage,
		"created_at":    user.CreatedAt,
	})
}

func VerifyToken(c *gin.Context) {
	utils.Success(c, gin.H{
		"valid":   true,
		"user_id": c.GetUint(middleware.ContextUserID),
		"role":    c.GetString(middleware.ContextUserRole),
	})
}
