package establishment

import "errors"

var (
	ErrEstablishmentNotFound = errors.New("establishment not found")
	ErrInvalidTimezone       = errors.New("invalid timezone")
)
