package shortlink

import "time"

// ShortLink maps a short code to a recipe. One link per recipe; repeated
// requests return the existing code.
type ShortLink struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"size:16;uniqueIndex;not null"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ShortLink) TableName() string { return "short_links" }
