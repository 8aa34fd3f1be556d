package timeclock

import "errors"

// ErrNotAuthorized covers wrong PIN, unknown employee, employee without PIN and wrong role alike
var ErrNotAuthorized = errors.New("not authorized")
