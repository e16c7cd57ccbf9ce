package seed

import "errors"

var (
	// ErrServiceRequired indicates a nil catalog service was passed.
	ErrServiceRequired = errors.New("catalog service is required")

	// ErrRepositoryRequired indicates a nil product repository was passed.
	ErrRepositoryRequired = errors.New("product repository is required")

	// ErrFeedUnavailable indicates the feed could not be fetched.
	ErrFeedUnavailable = errors.New("product feed unavailable")

	// ErrFeedMalformed indicates the feed body could not be decoded.
	ErrFeedMalformed = errors.New("product feed malformed")
)
