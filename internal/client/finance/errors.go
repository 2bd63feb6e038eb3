package finance

import "errors"

var (
	// ErrDateRange means only one of the start/end dates was provided.
	ErrDateRange = errors.New("start and end dates must be provided together")

	// ErrEmptyTagName rejects blank tag names before the request is built.
	ErrEmptyTagName = errors.New("tag name cannot be empty")

	// ErrInvalidTagColor rejects colors that are not "#RRGGBB" hex strings.
	ErrInvalidTagColor = errors.New("tag color must be a hex RGB string like #19D2A5")
)
