package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee already registered")
	ErrEmailExists      = errors.New("email already registered")
)
