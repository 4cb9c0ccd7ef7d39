package services

import "errors"

// Error taxonomy shared by the core services. Store implementations map their
// backend-specific failures onto these sentinels so callers can branch with
// errors.Is.
var (
	// ErrNotFound is returned when a referenced profile or match record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned by Create when a record for the key is already present.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConflict is returned when an atomic update precondition no longer holds
	// at write time. Callers retry the read-modify-write cycle a bounded number
	// of times rather than overwriting.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrInvalidTransition is returned when an operation is attempted in a state
	// that does not permit it, e.g. relaying a message with no open session.
	ErrInvalidTransition = errors.New("invalid transition")
)

// maxUpdateAttempts bounds optimistic-concurrency retry loops.
const maxUpdateAttempts = 3
