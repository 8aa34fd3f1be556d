package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidSalary    = errors.New("salary must be greater than zero")
	ErrInvalidPIN       = errors.New("PIN must be 4 to 6 digits")
)
