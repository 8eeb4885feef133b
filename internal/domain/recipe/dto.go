package recipe

import (
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// IngredientRef is the write-model shape for one ingredient in a payload.
type IngredientRef struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount" binding:"required"`
}

type CreateRequest struct {
	Ingredients []IngredientRef `json:"ingredients" binding:"required"`
	Tags        []int64         `json:"tags" binding:"required"`
	Name        string          `json:"name" binding:"required,max=256"`
	Image       string          `json:"image" binding:"required"`
	Text        string          `json:"text" binding:"required"`
	CookingTime int             `json:"cooking_time" binding:"required"`
}

// UpdateRequest allows partial scalar updates; ingredients and tags, when
// present, fully replace the stored association sets.
type UpdateRequest struct {
	Ingredients []IngredientRef `json:"ingredients"`
	Tags        []int64         `json:"tags"`
	Name        *string         `json:"name"`
	Image       *string         `json:"image"`
	Text        *string         `json:"text"`
	CookingTime *int            `json:"cooking_time"`
}

// IngredientAmountView is the read-model shape for one ingredient line.
type IngredientAmountView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Response is the full read model returned by recipe endpoints.
type Response struct {
	ID               int64                  `json:"id"`
	Tags             []catalog.Tag          `json:"tags"`
	Author           user.Profile           `json:"author"`
	Ingredients      []IngredientAmountView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// Summary is the compact read model used by favorite/cart responses and
// subscription listings.
type Summary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func NewSummary(rec *Recipe) Summary {
	return Summary{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       rec.Image,
		CookingTime: rec.CookingTime,
	}
}

func newResponse(rec *Recipe, author user.Profile, favorited, inCart bool) Response {
	ingredients := make([]IngredientAmountView, 0, len(rec.Ingredients))
	for _, ia := range rec.Ingredients {
		ingredients = append(ingredients, IngredientAmountView{
			ID:              ia.IngredientID,
			Name:            ia.Ingredient.Name,
			MeasurementUnit: ia.Ingredient.MeasurementUnit,
			Amount:          ia.Amount,
		})
	}

	tags := rec.Tags
	if tags == nil {
		tags = []catalog.Tag{}
	}

	return Response{
		ID:               rec.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             rec.Name,
		Image:            rec.Image,
		Text:             rec.Text,
		CookingTime:      rec.CookingTime,
	}
}
