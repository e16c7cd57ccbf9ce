// Copyright 2026 Seekwell Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

// Field identifies a mutable product field in a ChangeSet.
type Field string

const (
	FieldName        Field = "name"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
	FieldImage       Field = "image"
)

// textFields are the fields the embedding is derived from. Touching any of
// them on an update forces the embedding to be recomputed.
var textFields = map[Field]bool{
	FieldName:        true,
	FieldCategory:    true,
	FieldDescription: true,
}

// ChangeSet collects field updates for a product. Only fields explicitly set
// are applied; setting a field counts as touching it even when the new value
// equals the old one.
//
// Price is carried as a decimal string ("19.99") and normalized to integer
// cents when the change set is applied.
type ChangeSet struct {
	values map[Field]string
}

// NewChangeSet creates an empty ChangeSet.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{values: make(map[Field]string)}
}

// SetName records a name update.
func (c *ChangeSet) SetName(name string) *ChangeSet {
	c.values[FieldName] = name
	return c
}

// SetCategory records a category update.
func (c *ChangeSet) SetCategory(category string) *ChangeSet {
	c.values[FieldCategory] = category
	return c
}

// SetDescription records a description update.
func (c *ChangeSet) SetDescription(description string) *ChangeSet {
	c.values[FieldDescription] = description
	return c
}

// SetPrice records a price update as a decimal string, e.g. "19.99".
func (c *ChangeSet) SetPrice(price string) *ChangeSet {
	c.values[FieldPrice] = price
	return c
}

// SetImage records an image URL update.
func (c *ChangeSet) SetImage(image string) *ChangeSet {
	c.values[FieldImage] = image
	return c
}

// Has reports whether the field was set.
func (c *ChangeSet) Has(field Field) bool {
	_, ok := c.values[field]
	return ok
}

// Get returns the raw value recorded for the field.
func (c *ChangeSet) Get(field Field) (string, bool) {
	v, ok := c.values[field]
	return v, ok
}

// Fields returns the set fields, in no particular order.
func (c *ChangeSet) Fields() []Field {
	fields := make([]Field, 0, len(c.values))
	for field := range c.values {
		fields = append(fields, field)
	}
	return fields
}

// Empty reports whether no fields were set.
func (c *ChangeSet) Empty() bool {
	return len(c.values) == 0
}

// TouchesText reports whether any embedding-relevant field was set.
func (c *ChangeSet) TouchesText() bool {
	for field := range c.values {
		if textFields[field] {
			return true
		}
	}
	return false
}
