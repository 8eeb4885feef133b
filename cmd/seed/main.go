package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM short_links")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM shopping_cart_entries")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM ingredient_amounts")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	log.Println("Creating users...")
	users := make([]user.User, 0, 3)
	for _, spec := range []struct {
		email, username, first, last, password string
	}{
		{"alice@foodgram.app", "alice", "Alice", "Baker", "alice12345"},
		{"bob@foodgram.app", "bob", "Bob", "Cook", "bob1234567"},
		{"carol@foodgram.app", "carol", "Carol", "Chef", "carol12345"},
	} {
		hash, _ := bcrypt.GenerateFromPassword([]byte(spec.password), bcrypt.DefaultCost)
		u := user.User{
			Email:        spec.email,
			Username:     spec.username,
			FirstName:    spec.first,
			LastName:     spec.last,
			PasswordHash: string(hash),
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("seed user:", err)
		}
		users = append(users, u)
	}

	log.Println("Creating tags...")
	tags := []catalog.Tag{
		{Name: "Breakfast", Slug: "breakfast"},
		{Name: "Lunch", Slug: "lunch"},
		{Name: "Dinner", Slug: "dinner"},
	}
	if err := db.Create(&tags).Error; err != nil {
		log.Fatal("seed tags:", err)
	}

	log.Println("Creating ingredients...")
	ingredients := []catalog.Ingredient{
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "sugar", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
		{Name: "egg", MeasurementUnit: "pcs"},
		{Name: "butter", MeasurementUnit: "g"},
		{Name: "salt", MeasurementUnit: "g"},
	}
	if err := db.Create(&ingredients).Error; err != nil {
		log.Fatal("seed ingredients:", err)
	}

	log.Println("Creating recipes...")
	recipeRepo := recipe.NewRepository(db)

	pancakes := &recipe.Recipe{
		Name:        "Pancakes",
		AuthorID:    users[0].ID,
		Text:        "Mix, rest, fry on a hot pan.",
		Image:       "recipes/pancakes.png",
		CookingTime: 20,
		Ingredients: []recipe.IngredientAmount{
			{IngredientID: ingredients[0].ID, Amount: 200},
			{IngredientID: ingredients[2].ID, Amount: 300},
			{IngredientID: ingredients[3].ID, Amount: 2},
		},
	}
	if err := recipeRepo.Create(ctx, pancakes, []int64{tags[0].ID}); err != nil {
		log.Fatal("seed recipe:", err)
	}

	shortbread := &recipe.Recipe{
		Name:        "Shortbread",
		AuthorID:    users[1].ID,
		Text:        "Cream butter and sugar, add flour, bake until golden.",
		Image:       "recipes/shortbread.png",
		CookingTime: 45,
		Ingredients: []recipe.IngredientAmount{
			{IngredientID: ingredients[0].ID, Amount: 300},
			{IngredientID: ingredients[1].ID, Amount: 100},
			{IngredientID: ingredients[4].ID, Amount: 200},
		},
	}
	if err := recipeRepo.Create(ctx, shortbread, []int64{tags[2].ID}); err != nil {
		log.Fatal("seed recipe:", err)
	}

	log.Println("Creating favorites and cart entries...")
	favoriteRepo := favorite.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	if err := favoriteRepo.Add(ctx, users[1].ID, pancakes.ID); err != nil {
		log.Fatal("seed favorite:", err)
	}
	if err := cartRepo.Add(ctx, users[1].ID, pancakes.ID); err != nil {
		log.Fatal("seed cart:", err)
	}
	if err := cartRepo.Add(ctx, users[1].ID, shortbread.ID); err != nil {
		log.Fatal("seed cart:", err)
	}

	log.Println("Seed complete.")
}
