package domain

import "errors"

// ErrInvalidSelection is wrapped by every selection validation failure.
var ErrInvalidSelection = errors.New("invalid selection")
