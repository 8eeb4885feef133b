package cart

import "time"

// Entry links a user to a recipe placed in their shopping cart. Same
// uniqueness discipline as favorites: the composite index decides, not a
// check-then-insert.
type Entry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Entry) TableName() string { return "shopping_cart_entries" }

// Item is one aggregated shopping-list line: a (name, unit) group with the
// summed amount across every recipe in the cart.
type Item struct {
	Name            string
	MeasurementUnit string
	Total           int
}
