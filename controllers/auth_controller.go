package controllers

import (
	"net/http"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"
	"DayflowGo/utils"

	"github.com/gin-gonic/gin"
)

// AuthController issues tokens. The planner is self-hosted single-user, so
// accounts are created directly rather than through an identity provider.
type AuthController struct{}

// CreateTestUser creates a disposable account and returns its token.
func (ac *AuthController) CreateTestUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" {
		req.Username = "test-user"
	}

	user := models.User{
		ID:         utils.GenerateID(),
		Username:   req.Username,
		CreatedAt:  time.Now().UTC(),
		IsTestUser: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("user creation failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user creation failed"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
