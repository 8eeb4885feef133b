package recipe

import "errors"

var (
	ErrNotFound  = errors.New("recipe not found")
	ErrNotAuthor = errors.New("only the author can modify this recipe")

	ErrCookingTimeRange    = errors.New("cooking time is out of range")
	ErrNoIngredients       = errors.New("at least one ingredient is required")
	ErrDuplicateIngredient = errors.New("ingredients must not repeat")
	ErrAmountRange         = errors.New("ingredient amount is out of range")
	ErrNoTags              = errors.New("at least one tag is required")
	ErrDuplicateTag        = errors.New("tags must not repeat")
	ErrUnknownIngredient   = errors.New("referenced ingredient does not exist")
	ErrUnknownTag          = errors.New("referenced tag does not exist")
)

// IsValidation reports whether err is a user-correctable payload error.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrCookingTimeRange),
		errors.Is(err, ErrNoIngredients),
		errors.Is(err, ErrDuplicateIngredient),
		errors.Is(err, ErrAmountRange),
		errors.Is(err, ErrNoTags),
		errors.Is(err, ErrDuplicateTag),
		errors.Is(err, ErrUnknownIngredient),
		errors.Is(err, ErrUnknownTag):
		return true
	}
	return false
}
