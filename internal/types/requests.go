package types

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateIngredientRequest represents the request body for creating an ingredient
type CreateIngredientRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Quantity float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit     string  `json:"unit" binding:"max=20"`
}

// UpdateIngredientRequest represents the request body for updating an ingredient
type UpdateIngredientRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Quantity float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit     string  `json:"unit" binding:"max=20"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   string   `json:"description"`
	Steps         []string `json:"steps" binding:"required,min=1"`
	Servings      int      `json:"servings" binding:"omitempty,gt=0"`
	PrepMinutes   int      `json:"prep_minutes" binding:"omitempty,gt=0"`
	IsPublic      bool     `json:"is_public"`
	IngredientIDs []string `json:"ingredient_ids"`
}

// UpdateRecipeRequest represents the request body for updating a recipe
type UpdateRecipeRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   string   `json:"description"`
	Steps         []string `json:"steps" binding:"required,min=1"`
	Servings      int      `json:"servings" binding:"omitempty,gt=0"`
	PrepMinutes   int      `json:"prep_minutes" binding:"omitempty,gt=0"`
	IsPublic      bool     `json:"is_public"`
	IngredientIDs []string `json:"ingredient_ids"`
}

// RateRecipeRequest represents the request body for rating a recipe
type RateRecipeRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// UpdateAccountRequest represents the request body for editing the account
// profile. The current password must be re-entered for the change to apply.
type UpdateAccountRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

// UpdatePasswordRequest represents the request body for changing the password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
