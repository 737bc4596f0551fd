package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/handlers"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"gorm.io/gorm"
)

func newProfileRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userId", userID) })
	r.GET("/profile", handlers.GetProfile(db))
	r.PUT("/profile", handlers.UpdateProfile(db))
	return r
}

func TestProfile_GetAndUpdate(t *testing.T) {
	db := newTestDB(t)
	user := models.User{
		FullName:    "Asha Kumari",
		Email:       "9876543210@phone.local",
		PhoneNumber: "9876543210",
	}
	require.NoError(t, db.Create(&user).Error)

	r := newProfileRouter(db, user.ID)

	code, resp := doReq(t, r, http.MethodGet, "/profile", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "Asha Kumari", resp["fullName"])
	assert.Equal(t, "9876543210", resp["phoneNumber"])

	code, resp = doReq(t, r, http.MethodPut, "/profile", map[string]interface{}{
		"fullName": "Asha Devi",
		"email":    "asha@example.com",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, "Asha Devi", resp["fullName"])

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	assert.Equal(t, "Asha Devi", saved.FullName)
	assert.Equal(t, "asha@example.com", saved.Email)
	// The phone number is the account key and never changes here.
	assert.Equal(t, "9876543210", saved.PhoneNumber)
}

func TestProfile_UnknownUser(t *testing.T) {
	r := newProfileRouter(newTestDB(t), 999)

	code, resp := doReq(t, r, http.MethodGet, "/profile", nil)
	assert.Equal(t, 404, code)
	assert.Equal(t, "User not found", resp["error"])
}
