package shortlink

import "errors"

var ErrNotFound = errors.New("short link not found")
