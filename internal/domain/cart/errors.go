package cart

import "errors"

var (
	ErrAlreadyInCart = errors.New("recipe is already in the shopping cart")
	ErrNotInCart     = errors.New("recipe is not in the shopping cart")
	ErrEmptyCart     = errors.New("shopping cart is empty")
)
