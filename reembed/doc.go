// Package reembed recomputes embeddings for the whole catalog, typically
// after switching embedding models.
//
// Products are processed in batches with progress tracking and retry logic
// with exponential backoff. Soft-deleted products are skipped; their
// embeddings would never be ranked anyway.
package reembed
