package badger

import (
	"fmt"

	"github.com/seekwell/wares/core"
)

// Key prefixes for different data types.
const (
	productRecordPrefix = "prodrec"
	productSlugPrefix   = "prodslug"
)

// makeProductKey generates a key for a product by ID.
func makeProductKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", productRecordPrefix, id))
}

// makeProductSlugKey generates a key for the slug index.
func makeProductSlugKey(slug string) []byte {
	return []byte(fmt.Sprintf("%s:%s", productSlugPrefix, slug))
}
