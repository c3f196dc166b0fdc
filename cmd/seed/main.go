// Command seed populates the database with a pair of demo accounts, some
// ingredients and a few recipes, for local development.
package main

import (
	"context"
	"log"

	"github.com/tastebook/backend/config"
	"github.com/tastebook/backend/internal/database"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/types"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	ingredientService := service.NewIngredientService(db)

	users := []struct {
		name, email, password string
	}{
		{"Alice Demo", "alice@example.com", "password1"},
		{"Bob Demo", "bob@example.com", "password2"},
	}

	for _, u := range users {
		token, err := authService.Register(ctx, u.name, u.email, u.password)
		if err != nil {
			log.Printf("Skipping %s: %v", u.email, err)
			continue
		}
		claims, err := authService.ValidateToken(token)
		if err != nil {
			log.Fatalf("Failed to validate seed token: %v", err)
		}

		for _, ing := range []types.CreateIngredientRequest{
			{Name: "Onion", Quantity: 2, Unit: "pcs"},
			{Name: "Butter", Quantity: 50, Unit: "g"},
			{Name: "Carrot", Quantity: 3, Unit: "pcs"},
		} {
			if _, err := ingredientService.Create(ctx, claims.UserID, &ing); err != nil {
				log.Fatalf("Failed to seed ingredient: %v", err)
			}
		}

		recipes := []types.CreateRecipeRequest{
			{
				Title:       "Vegetable Soup",
				Description: "A warming soup for cold evenings.",
				Steps:       []string{"Chop the vegetables", "Simmer for 30 minutes", "Season and serve"},
				Servings:    4,
				PrepMinutes: 45,
				IsPublic:    true,
			},
			{
				Title:       "Secret Family Stew",
				Description: "Not ready to share this one yet.",
				Steps:       []string{"Brown the meat", "Add stock", "Cook low and slow"},
				Servings:    6,
				PrepMinutes: 120,
				IsPublic:    false,
			},
		}
		for _, r := range recipes {
			if _, err := recipeService.Create(ctx, claims.UserID, &r); err != nil {
				log.Fatalf("Failed to seed recipe: %v", err)
			}
		}

		log.Printf("Seeded %s", u.email)
	}
}
