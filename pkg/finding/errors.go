package finding

import "errors"

// ErrEmptyResponse indicates the target returned an empty completion
// for a probe prompt. Providers surface it so callers can distinguish
// a silent model from a transport failure with errors.Is().
var ErrEmptyResponse = errors.New("finding: empty response from target")
