package services

import (
	"errors"
	"testing"

	"github.com/Vladimir-Samoilov/TastyHub/models"
)

func wantConflict(t *testing.T, err error) {
	t.Helper()
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestAddFavoriteThenConflict(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "fan")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")

	recipe := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Pie",
		Text:        "Bake.",
		Image:       "img",
		CookingTime: 10,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{{IngredientID: flour.ID, Amount: 10}},
	})

	got, err := AddFavorite(db, user.ID, recipe.ID)
	if err != nil {
		t.Fatalf("first AddFavorite failed: %v", err)
	}
	if got.ID != recipe.ID {
		t.Fatalf("expected the favorited recipe back, got %+v", got)
	}

	_, err = AddFavorite(db, user.ID, recipe.ID)
	wantConflict(t, err)
}

func TestRemoveFavoriteNotInList(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "fan")

	err := RemoveFavorite(db, user.ID, 123)
	wantNotFound(t, err)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "fan")

	_, err := AddFavorite(db, user.ID, 123)
	wantNotFound(t, err)
}

func TestShoppingCartAddRemoveLifecycle(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "shopper")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")

	recipe := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Pie",
		Text:        "Bake.",
		Image:       "img",
		CookingTime: 10,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{{IngredientID: flour.ID, Amount: 10}},
	})

	if _, err := AddToShoppingCart(db, user.ID, recipe.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := AddToShoppingCart(db, user.ID, recipe.ID)
	wantConflict(t, err)

	if err := RemoveFromShoppingCart(db, user.ID, recipe.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	// Removal is not idempotent: the second call reports the missing row.
	err = RemoveFromShoppingCart(db, user.ID, recipe.ID)
	wantNotFound(t, err)

	// After removal the pair can be added again.
	if _, err := AddToShoppingCart(db, user.ID, recipe.ID); err != nil {
		t.Fatalf("re-add after removal failed: %v", err)
	}
}

func TestAddFavoriteConcurrentAddsCreateOnce(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// SQLite rejects a second concurrent writer with a busy error, so the
	// pool is pinned to one connection; the goroutines still race into the
	// unique index and only one insert can win.
	sqlDB.SetMaxOpenConns(1)

	user := createUser(t, db, "fan")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")

	recipe := mustCreateRecipe(t, db, author.ID, RecipeInput{
		Name:        "Pie",
		Text:        "Bake.",
		Image:       "img",
		CookingTime: 10,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientLine{{IngredientID: flour.ID, Amount: 10}},
	})

	const workers = 8
	start := make(chan struct{})
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			<-start
			_, err := AddFavorite(db, user.ID, recipe.ID)
			results <- err
		}()
	}
	close(start)

	var created, conflicted int
	for i := 0; i < workers; i++ {
		err := <-results
		if err == nil {
			created++
			continue
		}
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("unexpected error from racing add: %v", err)
		}
		conflicted++
	}
	if created != 1 || conflicted != workers-1 {
		t.Fatalf("expected exactly one add to win, got created=%d conflicted=%d", created, conflicted)
	}

	var count int64
	if err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count favorites: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single favorite row, got %d", count)
	}
}

func TestSubscribeToSelf(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "loner")

	for i := 0; i < 2; i++ {
		_, err := Subscribe(db, user.ID, user.ID)
		wantFieldError(t, err, "author")
	}
}

func TestSubscribeThenConflict(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "follower")
	author := createUser(t, db, "author")

	got, err := Subscribe(db, user.ID, author.ID)
	if err != nil {
		t.Fatalf("first Subscribe failed: %v", err)
	}
	if got.ID != author.ID {
		t.Fatalf("expected the author back, got %+v", got)
	}

	_, err = Subscribe(db, user.ID, author.ID)
	wantConflict(t, err)
}

func TestSubscribeUnknownAuthor(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "follower")

	_, err := Subscribe(db, user.ID, 999)
	wantNotFound(t, err)
}

func TestUnsubscribeNotSubscribed(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "follower")
	author := createUser(t, db, "author")

	err := Unsubscribe(db, user.ID, author.ID)
	wantNotFound(t, err)
}

func TestSubscriptionIsDirectional(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "follower")
	author := createUser(t, db, "author")

	if _, err := Subscribe(db, user.ID, author.ID); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	// The reverse pair is a different row and must not conflict.
	if _, err := Subscribe(db, author.ID, user.ID); err != nil {
		t.Fatalf("reverse Subscribe failed: %v", err)
	}
}
