package layout

import "errors"

// ErrEmptyText is returned when there is no text to lay out.
var ErrEmptyText = errors.New("layout: empty text")
