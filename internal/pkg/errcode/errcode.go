package errcode

const (
	ErrUnknown = 10000000 + iota
	ErrUnauthorized
	ErrForbidden
	ErrNotFound
	ErrInvalid
	ErrConflict
	ErrInternal
	ErrSessionFinished
	ErrNoFieldNotes
	ErrNoSummary
	ErrClusteringFailed
	ErrExportFailed
)
