package administrator

import "errors"

var (
	ErrAdministratorNotFound   = errors.New("administrator not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrEstablishmentIDRequired = errors.New("establishment ID is required")
)
