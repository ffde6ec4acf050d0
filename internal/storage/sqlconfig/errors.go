package sqlconfig

import "errors"

// ErrNotFound is returned when a lookup by primary key or unique column
// matches no row.
var ErrNotFound = errors.New("record not found")
