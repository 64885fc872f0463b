package services

import (
	"testing"
)

func TestShoppingListSumsAcrossCartRecipes(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "shopper")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")
	sugar := createIngredient(t, db, "sugar", "g")

	pie := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Pie",
		Text:        "Bake.",
		Image:       "img",
		CookingTime: 10,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{
			{IngredientID: flour.ID, Amount: 200},
			{IngredientID: sugar.ID, Amount: 50},
		},
	})
	bread := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Bread",
		Text:        "Bake longer.",
		Image:       "img",
		CookingTime: 60,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{{IngredientID: flour.ID, Amount: 300}},
	})

	for _, recipeID := range []uint{pie.ID, bread.ID} {
		if _, err := AddToShoppingCart(db, user.ID, recipeID); err != nil {
			t.Fatalf("AddToShoppingCart failed: %v", err)
		}
	}

	items, err := BuildShoppingList(db, user.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList failed: %v", err)
	}

	want := "flour (g) — 500\nsugar (g) — 50"
	if got := RenderShoppingList(items); got != want {
		t.Fatalf("rendered list mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestShoppingListEmptyCart(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "shopper")

	items, err := BuildShoppingList(db, user.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
	if RenderShoppingList(items) != "" {
		t.Fatal("expected empty rendering for empty cart")
	}
}

func TestShoppingListIsDeterministic(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "shopper")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")

	names := []string{"zucchini", "apple", "milk", "butter", "salt"}
	lines := make([]IngredientLine, 0, len(names))
	for _, name := range names {
		ingredient := createIngredient(t, db, name, "g")
		lines = append(lines, IngredientLine{IngredientID: ingredient.ID, Amount: 5})
	}

	recipe := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Stew",
		Text:        "Simmer.",
		Image:       "img",
		CookingTime: 90,
		TagIDs:      []uint{tag.ID},
		Ingredients: lines,
	})
	if _, err := AddToShoppingCart(db, user.ID, recipe.ID); err != nil {
		t.Fatalf("AddToShoppingCart failed: %v", err)
	}

	first, err := BuildShoppingList(db, user.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList failed: %v", err)
	}
	want := "apple (g) — 5\nbutter (g) — 5\nmilk (g) — 5\nsalt (g) — 5\nzucchini (g) — 5"
	if got := RenderShoppingList(first); got != want {
		t.Fatalf("expected ascending order by name:\ngot  %q\nwant %q", got, want)
	}

	for i := 0; i < 3; i++ {
		again, err := BuildShoppingList(db, user.ID)
		if err != nil {
			t.Fatalf("BuildShoppingList failed on repeat: %v", err)
		}
		if RenderShoppingList(again) != want {
			t.Fatalf("repeated call produced different output: %q", RenderShoppingList(again))
		}
	}
}

func TestShoppingListIgnoresRecipesOutsideCart(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "shopper")
	other := createUser(t, db, "other")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")
	salt := createIngredient(t, db, "salt", "g")

	inCart := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Bread",
		Text:        "Bake.",
		Image:       "img",
		CookingTime: 60,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{{IngredientID: flour.ID, Amount: 300}},
	})
	outside := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Crackers",
		Text:        "Bake.",
		Image:       "img",
		CookingTime: 20,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{{IngredientID: salt.ID, Amount: 5}},
	})

	if _, err := AddToShoppingCart(db, user.ID, inCart.ID); err != nil {
		t.Fatalf("AddToShoppingCart failed: %v", err)
	}
	// Another user's cart must not leak into this user's list.
	if _, err := AddToShoppingCart(db, other.ID, outside.ID); err != nil {
		t.Fatalf("AddToShoppingCart failed: %v", err)
	}

	items, err := BuildShoppingList(db, user.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList failed: %v", err)
	}
	if got := RenderShoppingList(items); got != "flour (g) — 300" {
		t.Fatalf("unexpected list: %q", got)
	}
}

func TestShoppingListKeepsDistinctUnitsApart(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "shopper")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")
	flourG := createIngredient(t, db, "flour", "g")
	flourCups := createIngredient(t, db, "flour", "cups")

	recipe := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Mix",
		Text:        "Combine.",
		Image:       "img",
		CookingTime: 5,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{
			{IngredientID: flourG.ID, Amount: 100},
			{IngredientID: flourCups.ID, Amount: 2},
		},
	})
	if _, err := AddToShoppingCart(db, user.ID, recipe.ID); err != nil {
		t.Fatalf("AddToShoppingCart failed: %v", err)
	}

	items, err := BuildShoppingList(db, user.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList failed: %v", err)
	}
	want := "flour (cups) — 2\nflour (g) — 100"
	if got := RenderShoppingList(items); got != want {
		t.Fatalf("units must aggregate separately:\ngot  %q\nwant %q", got, want)
	}
}
