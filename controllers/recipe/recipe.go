package recipeControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vladimir-Samoilov/TastyHub/services"
	"github.com/Vladimir-Samoilov/TastyHub/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ingredientInput struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount"`
}

type recipeInput struct {
	Name        string            `json:"name" binding:"required"`
	Text        string            `json:"text" binding:"required"`
	Image       string            `json:"image"`
	CookingTime int               `json:"cooking_time"`
	Ingredients []ingredientInput `json:"ingredients"`
	Tags        []uint            `json:"tags"`
}

// currentUserID returns the authenticated caller's id, 0 for anonymous.
func currentUserID(c *gin.Context) uint {
	val, _ := c.Get("user_id")
	id, _ := val.(uint)
	return id
}

// resolveImage turns the write-shape image value into a stored reference
// URL. Base64 data-URIs are decoded and persisted; anything else is kept
// as an opaque reference.
func resolveImage(image string) (string, error) {
	if strings.HasPrefix(image, "data:") {
		return storage.SaveDataURI(image, "recipes/images")
	}
	return image, nil
}

func toServiceInput(in recipeInput, imageURL string) services.RecipeInput {
	lines := make([]services.IngredientLine, 0, len(in.Ingredients))
	for _, item := range in.Ingredients {
		lines = append(lines, services.IngredientLine{IngredientID: item.ID, Amount: item.Amount})
	}
	return services.RecipeInput{
		Name:        in.Name,
		Text:        in.Text,
		Image:       imageURL,
		CookingTime: in.CookingTime,
		TagIDs:      in.Tags,
		Ingredients: lines,
	}
}

// POST /recipes
func CreateRecipe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		var input recipeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Image == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "Image is required."}})
			return
		}

		imageURL, err := resolveImage(input.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": err.Error()}})
			return
		}

		recipe, err := services.CreateRecipe(db, userID, toServiceInput(input, imageURL))
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}

		c.JSON(http.StatusCreated, services.ToRecipeView(db, recipe, userID))
	}
}

// PATCH /recipes/:id
func UpdateRecipe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		recipeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
			return
		}

		var input recipeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		imageURL := ""
		if input.Image != "" {
			if imageURL, err = resolveImage(input.Image); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": err.Error()}})
				return
			}
		}

		recipe, err := services.UpdateRecipe(db, uint(recipeID), userID, toServiceInput(input, imageURL))
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}

		c.JSON(http.StatusOK, services.ToRecipeView(db, recipe, userID))
	}
}

// DELETE /recipes/:id
func DeleteRecipe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		recipeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
			return
		}

		if err := services.DeleteRecipe(db, uint(recipeID), userID); err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// GET /recipes/:id
func GetRecipeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := currentUserID(c)

		recipeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
			return
		}

		recipe, err := services.GetRecipe(db, uint(recipeID))
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}

		c.JSON(http.StatusOK, services.ToRecipeView(db, recipe, viewerID))
	}
}

// GET /recipes
func GetRecipes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := currentUserID(c)

		filter := services.RecipeFilter{
			TagSlugs:         c.QueryArray("tags"),
			IsFavorited:      c.Query("is_favorited") == "1",
			IsInShoppingCart: c.Query("is_in_shopping_cart") == "1",
		}
		if author := c.Query("author"); author != "" {
			id, err := strconv.ParseUint(author, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author id"})
				return
			}
			filter.AuthorID = uint(id)
		}
		if limit := c.Query("limit"); limit != "" {
			if n, err := strconv.Atoi(limit); err == nil && n > 0 {
				filter.Limit = n
			}
		}
		if page := c.Query("page"); page != "" {
			if n, err := strconv.Atoi(page); err == nil && n > 1 {
				filter.Page = n
			}
		}

		recipes, total, err := services.ListRecipes(db, filter, viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
			return
		}

		results := make([]services.RecipeView, 0, len(recipes))
		for i := range recipes {
			results = append(results, services.ToRecipeView(db, &recipes[i], viewerID))
		}

		c.JSON(http.StatusOK, gin.H{"count": total, "results": results})
	}
}

// GET /recipes/:id/get-link
func GetLink(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
			return
		}

		recipe, err := services.GetRecipe(db, uint(recipeID))
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}

		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		link := fmt.Sprintf("%s://%s/recipes/%d/", scheme, c.Request.Host, recipe.ID)
		c.JSON(http.StatusOK, gin.H{"short-link": link})
	}
}
