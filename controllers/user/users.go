package userControllers

import (
	"net/http"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"github.com/Vladimir-Samoilov/TastyHub/services"
	"github.com/Vladimir-Samoilov/TastyHub/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentUserID returns the authenticated caller's id, 0 for anonymous.
func currentUserID(c *gin.Context) uint {
	val, _ := c.Get("user_id")
	id, _ := val.(uint)
	return id
}

// GET /users
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := currentUserID(c)

		var users []models.User
		if err := db.Order("id").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		results := make([]services.UserView, 0, len(users))
		for i := range users {
			results = append(results, services.ToUserView(db, &users[i], viewerID))
		}
		c.JSON(http.StatusOK, results)
	}
}

// GET /users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := currentUserID(c)

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, services.ToUserView(db, &user, viewerID))
	}
}

// GET /users/me
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, services.ToUserView(db, &user, userID))
	}
}

// PUT /users/me/avatar
func UpdateAvatar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var body struct {
			Avatar string `json:"avatar"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Avatar == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"avatar": "No file provided."}})
			return
		}

		avatarURL, err := storage.SaveDataURI(body.Avatar, "users/avatars")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"avatar": err.Error()}})
			return
		}

		oldAvatar := user.Avatar
		if err := db.Model(&user).Update("avatar", avatarURL).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
			return
		}
		storage.Remove(oldAvatar)

		c.JSON(http.StatusOK, gin.H{"avatar": avatarURL})
	}
}

// DELETE /users/me/avatar
func DeleteAvatar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		storage.Remove(user.Avatar)
		if err := db.Model(&user).Update("avatar", "").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear avatar"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
