package database

import (
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/models"
)

// RunMigrations brings the schema up to date. The marks table's composite
// unique index on (user_id, recipe_id) is part of the model definition and
// is what the rating upsert relies on.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.Mark{},
	)
}
