package catalog

import "errors"

var (
	// ErrRepositoryRequired indicates a nil product repository was passed.
	ErrRepositoryRequired = errors.New("product repository is required")

	// ErrEmbedderRequired indicates a nil embedder was passed.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrEmbeddingFailed indicates the embedding provider failed. The write
	// that triggered the embedding is aborted.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrEmptyChangeSet indicates an update was requested with no fields set.
	ErrEmptyChangeSet = errors.New("empty change set")
)
