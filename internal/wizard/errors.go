package wizard

import "errors"

var (
	// ErrEntryNotFound is returned when an edit names an ID or index that does not exist
	ErrEntryNotFound = errors.New("entry not found")
	// ErrLastEntry is returned when an edit would remove the only remaining entry of a list
	ErrLastEntry = errors.New("cannot remove the last entry")
)
