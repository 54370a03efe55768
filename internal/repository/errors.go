package repository

import "errors"

// ErrNotFound is returned when a record does not exist in a store.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when a uniqueness constraint would be
// violated, e.g. a second feedback entry for the same ticket.
var ErrAlreadyExists = errors.New("record already exists")
