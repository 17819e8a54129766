package services

import (
	"errors"
)

var (
	// ErrIncompleteIdentity means the identification step was submitted with
	// a blank name or identifier; no session state is written.
	ErrIncompleteIdentity = errors.New("name and national ID are both required")

	// ErrNotIdentified means the session has no usable identity; the caller
	// should send the user back to the identification step.
	ErrNotIdentified = errors.New("session holds no identity")

	// ErrMissingID means the lookup form was submitted without an identifier.
	ErrMissingID = errors.New("national ID is required")
)
