package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing of the product slug.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Product is a single catalog item. The embedding vector is derived from the
// text fields and is kept in sync by the catalog service; it is owned by
// exactly one product and never exposed through JSON.
type Product struct {
	Id          ID        `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // minor units (cents), never a decimal
	Image       string    `json:"image"`
	Embedding   []float32 `json:"-"`
	InsertedAt  time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	DeletedAt   time.Time `json:"-"` // zero means live
}

// Deleted reports whether the product has been soft-deleted.
func (p *Product) Deleted() bool {
	return !p.DeletedAt.IsZero()
}

// EmbeddingText returns the canonical concatenation of the text fields that
// feed the embedding: name, category, description, newline-separated.
// No other fields ever participate.
func (p *Product) EmbeddingText() string {
	return p.Name + "\n" + p.Category + "\n" + p.Description
}

// SearchResult pairs a product with its distance from a query embedding.
// Smaller distance means more similar.
type SearchResult struct {
	Product  *Product
	Distance float32
}
