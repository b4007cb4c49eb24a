package product

import "errors"

var ErrInvalidDocument = errors.New("stored product document is invalid")
