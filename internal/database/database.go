package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shortlink"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/user"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema, including the composite unique
// indexes that back the uniqueness invariants.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&catalog.Ingredient{},
		&catalog.Tag{},
		&recipe.Recipe{},
		&recipe.IngredientAmount{},
		&favorite.Favorite{},
		&cart.Entry{},
		&subscription.Subscription{},
		&shortlink.ShortLink{},
	)
}
