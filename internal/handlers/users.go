package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"gorm.io/gorm"
)

// GetProfile retrieves the user's profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, userJSON(&user))
	}
}

// UpdateProfile updates the user's profile information. The phone
// number is the account key and cannot be changed here.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			FullName *string `json:"fullName"`
			Email    *string `json:"email"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Email != nil && *input.Email != "" {
			user.Email = *input.Email
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, userJSON(&user))
	}
}
