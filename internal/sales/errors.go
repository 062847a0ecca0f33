package sales

import "errors"

// ErrInvalidInput is returned when the dataset is missing or one of its
// collections is empty.
var ErrInvalidInput = errors.New("invalid input data")

// ErrMissingStrategy is returned when a revenue or bonus strategy is not supplied.
var ErrMissingStrategy = errors.New("missing calculation strategy")

// ErrUnknownStrategy is returned when a strategy name is not registered.
var ErrUnknownStrategy = errors.New("unknown calculation strategy")

// ErrNotFound is returned when a report with the given ID is not found.
var ErrNotFound = errors.New("report not found")

// ErrEmptyID is returned when trying to store a report with an empty ID.
var ErrEmptyID = errors.New("empty report ID")

// ErrDatasetUnavailable is returned when a remote dataset cannot be fetched.
var ErrDatasetUnavailable = errors.New("dataset unavailable")
