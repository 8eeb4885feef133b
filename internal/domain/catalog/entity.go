package catalog

// Ingredient is static reference data. The (name, measurement_unit) pair is
// unique; rows are never mutated once recipes reference them.
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:128;not null;uniqueIndex:idx_ingredient_name_unit"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:64;not null;uniqueIndex:idx_ingredient_name_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }

// Tag is static reference data with a unique name and slug.
type Tag struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:32;uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"size:32;uniqueIndex;not null"`
}

func (Tag) TableName() string { return "tags" }
