package dosing

import "errors"

// Validation failures for a dosing selection. Each is recoverable: the
// selection is rejected before any line is computed and the caller can fix
// the offending field. Returned errors wrap these sentinels together with
// the rejected values, so errors.Is works and a UI can show what was wrong.
var (
	ErrUnknownProduct  = errors.New("unknown manufacturer or series")
	ErrUnknownStage    = errors.New("unknown growth stage")
	ErrUnknownCategory = errors.New("unknown plant category")
	ErrUnknownUnit     = errors.New("unknown unit system")
	ErrInvalidVolume   = errors.New("volume must be a positive number")
)
