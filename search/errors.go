package search

import "errors"

var (
	// ErrRepositoryRequired indicates a nil product repository was passed.
	ErrRepositoryRequired = errors.New("product repository is required")

	// ErrEmbedderRequired indicates a nil embedder was passed.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrEmptyQuery indicates the search query was empty or whitespace.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrInvalidSkip indicates a negative skip value.
	ErrInvalidSkip = errors.New("skip must not be negative")

	// ErrInvalidLimit indicates a negative limit value.
	ErrInvalidLimit = errors.New("limit must not be negative")
)
