package ingredientControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Ingredient{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	r := gin.New()
	r.GET("/ingredients", GetIngredients(db))
	r.GET("/ingredients/:id", GetIngredientByID(db))
	return r, db
}

func listIngredients(t *testing.T, r *gin.Engine, path string) []models.Ingredient {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from %s, got %d", path, w.Code)
	}
	var ingredients []models.Ingredient
	if err := json.Unmarshal(w.Body.Bytes(), &ingredients); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return ingredients
}

func TestGetIngredientsPrefixFilter(t *testing.T) {
	r, db := newCatalogRouter(t)
	for _, ing := range []models.Ingredient{
		{Name: "Flour", MeasurementUnit: "g"},
		{Name: "flaxseed", MeasurementUnit: "g"},
		{Name: "sugar", MeasurementUnit: "g"},
		{Name: "sunflower oil", MeasurementUnit: "ml"},
	} {
		if err := db.Create(&ing).Error; err != nil {
			t.Fatalf("failed to seed ingredient: %v", err)
		}
	}

	// Case-insensitive prefix match.
	got := listIngredients(t, r, "/ingredients?name=fl")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for prefix 'fl', got %+v", got)
	}
	for _, ing := range got {
		if ing.Name != "Flour" && ing.Name != "flaxseed" {
			t.Fatalf("unexpected match %q", ing.Name)
		}
	}

	// Prefix, not substring: "our" must match nothing.
	if got := listIngredients(t, r, "/ingredients?name=our"); len(got) != 0 {
		t.Fatalf("expected no matches for non-prefix, got %+v", got)
	}

	// No filter returns the whole catalog.
	if got := listIngredients(t, r, "/ingredients"); len(got) != 4 {
		t.Fatalf("expected full catalog, got %+v", got)
	}
}

func TestGetIngredientByID(t *testing.T) {
	r, db := newCatalogRouter(t)
	ing := models.Ingredient{Name: "salt", MeasurementUnit: "g"}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("failed to seed ingredient: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ingredients/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ingredients/99", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
