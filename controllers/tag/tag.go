package tagControllers

import (
	"net/http"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /tags
func GetTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tags []models.Tag
		if err := db.Order("id").Find(&tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}

// GET /tags/:id
func GetTagByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tag models.Tag
		if err := db.First(&tag, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}
