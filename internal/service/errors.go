package service

import "errors"

// ErrAccountUnavailable is returned by every Operations call when no usable
// remote account is present. The engine never retries on the caller's
// behalf.
var ErrAccountUnavailable = errors.New("remote account unavailable")
