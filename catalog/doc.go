// Package catalog implements catalog writes with embedding synchronization.
//
// The invariant: a stored product's embedding is always derived from the
// name, category and description currently stored next to it. Creates embed
// before the first write; updates that touch any text field re-embed before
// the rewrite; price- and image-only updates skip the provider entirely. A
// provider failure aborts the write, leaving the previous row intact.
package catalog
