package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/services"
	"github.com/vidyaquiz/vidyaquiz-backend/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UploadChapterMaterial attaches a study-material PDF to a chapter
// (admin). A re-upload replaces the previous file.
func UploadChapterMaterial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var chapter models.Chapter
		if err := db.First(&chapter, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Chapter not found"})
			return
		}

		file, err := c.FormFile("material")
		if err != nil {
			c.JSON(400, gin.H{"error": "material file is required"})
			return
		}

		url, err := services.UploadMaterial(file, "materials")
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		oldURL := chapter.MaterialURL
		chapter.MaterialURL = url
		if err := db.Save(&chapter).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to save material"})
			return
		}

		if oldURL != "" {
			if err := services.DeleteMaterial(oldURL); err != nil {
				logger.Warn("failed to delete replaced material", zap.String("url", oldURL), zap.Error(err))
			}
		}

		c.JSON(200, gin.H{"materialUrl": url})
	}
}
