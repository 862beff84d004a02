package domain

import "errors"

var (
	// ErrSubmissionNotFound is returned when a submission id does not
	// correspond to an existing record.
	ErrSubmissionNotFound = errors.New("submission not found")
)
