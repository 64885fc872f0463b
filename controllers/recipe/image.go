package recipeControllers

import (
	"net/http"

	"github.com/Vladimir-Samoilov/TastyHub/services"
	"github.com/Vladimir-Samoilov/TastyHub/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The recipe image is its own sub-resource so clients can swap the picture
// without resubmitting the whole composition.

// GET /recipes/:id/image
func GetRecipeImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		recipe, err := services.GetRecipe(db, recipeID)
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"image": recipe.Image})
	}
}

// PUT /recipes/:id/image
// Accepts either a JSON body with a base64 data-URI or a multipart upload.
func UpdateRecipeImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		recipe, err := services.GetRecipe(db, recipeID)
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		if recipe.AuthorID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can edit this recipe"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			savePath, url, err := storage.SavedFilename("recipes/images", file.Filename)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload folder"})
				return
			}
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			imageURL = url
		} else {
			var body struct {
				Image string `json:"image"`
			}
			if err := c.ShouldBindJSON(&body); err != nil || body.Image == "" {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "No file provided."}})
				return
			}
			if imageURL, err = resolveImage(body.Image); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": err.Error()}})
				return
			}
		}

		oldImage := recipe.Image
		if err := db.Model(recipe).Update("image", imageURL).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
			return
		}
		storage.Remove(oldImage)

		c.JSON(http.StatusOK, gin.H{"image": imageURL})
	}
}

// DELETE /recipes/:id/image
func DeleteRecipeImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		recipe, err := services.GetRecipe(db, recipeID)
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		if recipe.AuthorID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can edit this recipe"})
			return
		}

		storage.Remove(recipe.Image)
		if err := db.Model(recipe).Update("image", "").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear image"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
