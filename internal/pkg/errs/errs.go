package errs

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalid         = errors.New("invalid")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal")
	ErrSessionFinished = errors.New("session is not active")
	ErrNoFieldNotes    = errors.New("no field notes")
	ErrNoSummary       = errors.New("no summary generated yet")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
