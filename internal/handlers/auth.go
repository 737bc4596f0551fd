package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/auth"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
)

type SendOTPInput struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOTPInput struct {
	Phone    string `json:"phone" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
	IsSignup bool   `json:"isSignup"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// SendOTP issues a fresh code and delivers it over SMS.
func SendOTP(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SendOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondAuthError(c, auth.ErrInvalidInput)
			return
		}

		if err := svc.SendOTP(c.Request.Context(), input.Phone); err != nil {
			respondAuthError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"message": "OTP भेज दिया गया है",
		})
	}
}

// VerifyOTP redeems a code and returns a session, creating the account
// first when isSignup is set.
func VerifyOTP(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondAuthError(c, auth.ErrInvalidInput)
			return
		}

		result, err := svc.VerifyOTP(c.Request.Context(), auth.VerifyInput{
			Phone:    input.Phone,
			Code:     input.OTP,
			IsSignup: input.IsSignup,
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
		})
		if err != nil {
			respondAuthError(c, err)
			return
		}

		respondSession(c, result)
	}
}

// Login authenticates with email-or-phone plus password.
func Login(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondAuthError(c, auth.ErrInvalidInput)
			return
		}

		result, err := svc.Login(c.Request.Context(), input.Identifier, input.Password)
		if err != nil {
			respondAuthError(c, err)
			return
		}

		respondSession(c, result)
	}
}

// RefreshSession rotates a refresh token into a new session pair.
func RefreshSession(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondAuthError(c, auth.ErrInvalidInput)
			return
		}

		result, err := svc.RefreshSession(c.Request.Context(), input.RefreshToken)
		if err != nil {
			respondAuthError(c, err)
			return
		}

		respondSession(c, result)
	}
}

func respondSession(c *gin.Context, result *auth.VerifyResult) {
	c.JSON(200, gin.H{
		"success": true,
		"session": result.Session,
		"user":    userJSON(result.User),
	})
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"fullName":    user.FullName,
		"phoneNumber": user.PhoneNumber,
		"isAdmin":     user.IsAdmin,
	}
}

// respondAuthError converts any failure into the JSON error body; no
// error leaves the handler boundary unhandled.
func respondAuthError(c *gin.Context, err error) {
	var flowErr *auth.FlowError
	if errors.As(err, &flowErr) {
		c.JSON(flowErr.Status, gin.H{"error": flowErr.Message})
		return
	}
	c.JSON(auth.ErrProvider.Status, gin.H{"error": auth.ErrProvider.Message})
}
