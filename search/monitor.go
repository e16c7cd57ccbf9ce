package search

import "github.com/seekwell/wares/core"

// SearchMonitor receives callbacks at each stage of a search.
// Implementations must not modify the values they receive.
type SearchMonitor interface {
	// Start is called once at the beginning of a search.
	Start(query string)

	// AfterQueryEmbedding is called with the query's embedding vector.
	AfterQueryEmbedding(vector []float32)

	// AfterScan is called with the distance-ordered page from storage,
	// before embeddings are stripped.
	AfterScan(products []*core.Product)

	// Finish is called with the final results.
	Finish(products []*core.Product)
}

// noopMonitor is used when no monitor is provided.
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (m *noopMonitor) Start(query string)                   {}
func (m *noopMonitor) AfterQueryEmbedding(vector []float32) {}
func (m *noopMonitor) AfterScan(products []*core.Product)   {}
func (m *noopMonitor) Finish(products []*core.Product)      {}
