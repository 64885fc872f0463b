package recipeControllers

import (
	"net/http"

	"github.com/Vladimir-Samoilov/TastyHub/services"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /recipes/download_shopping_cart
// Plain text by default, a spreadsheet with ?format=xlsx.
func DownloadShoppingCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		items, err := services.BuildShoppingList(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build shopping list"})
			return
		}

		if c.Query("format") == "xlsx" {
			writeShoppingListXLSX(c, items)
			return
		}

		content := services.RenderShoppingList(items)
		c.Header("Content-Disposition", `attachment; filename="shopping_cart.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
	}
}

func writeShoppingListXLSX(c *gin.Context, items []services.ShoppingListItem) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Shopping cart")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
		return
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"Ingredient", "Unit", "Amount"} {
		headerRow.AddCell().SetValue(h)
	}
	for _, item := range items {
		row := sheet.AddRow()
		row.AddCell().SetValue(item.Name)
		row.AddCell().SetValue(item.MeasurementUnit)
		row.AddCell().SetValue(item.TotalAmount)
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
		return
	}
}
