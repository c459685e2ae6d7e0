package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value via errors.Is. The
// boolean checks themselves never return errors.
var ErrValidationFailed = errors.New("validation failed")
