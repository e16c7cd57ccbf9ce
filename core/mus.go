package core

import (
	"time"

	com "github.com/mus-format/common-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the storage layer. Written by hand: the wire surface is
// one struct plus an ID, which does not justify a code generation step.

// IDMUS serializes IDs as varint uint64.
var IDMUS = idSer{}

type idSer struct{}

func (idSer) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSer) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSer) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idSer) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// ProductMUS serializes Products. Strings are length-prefixed, the embedding
// is a varint length followed by raw float32s, timestamps are unix
// microseconds with a presence flag so zero times survive a round trip.
var ProductMUS = productSer{}

type productSer struct{}

func (productSer) Marshal(p Product, bs []byte) (n int) {
	n = IDMUS.Marshal(p.Id, bs)
	n += ord.String.Marshal(p.Name, bs[n:])
	n += ord.String.Marshal(p.Slug, bs[n:])
	n += ord.String.Marshal(p.Category, bs[n:])
	n += ord.String.Marshal(p.Description, bs[n:])
	n += varint.Int64.Marshal(p.Price, bs[n:])
	n += ord.String.Marshal(p.Image, bs[n:])
	n += marshalVector(p.Embedding, bs[n:])
	n += marshalTime(p.InsertedAt, bs[n:])
	n += marshalTime(p.UpdatedAt, bs[n:])
	n += marshalTime(p.DeletedAt, bs[n:])
	return n
}

func (productSer) Unmarshal(bs []byte) (p Product, n int, err error) {
	var n1 int
	if p.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if p.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Slug, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Category, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Price, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Image, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Embedding, n1, err = unmarshalVector(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.InsertedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.UpdatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.DeletedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (productSer) Size(p Product) (size int) {
	size = IDMUS.Size(p.Id)
	size += ord.String.Size(p.Name)
	size += ord.String.Size(p.Slug)
	size += ord.String.Size(p.Category)
	size += ord.String.Size(p.Description)
	size += varint.Int64.Size(p.Price)
	size += ord.String.Size(p.Image)
	size += sizeVector(p.Embedding)
	size += sizeTime(p.InsertedAt)
	size += sizeTime(p.UpdatedAt)
	size += sizeTime(p.DeletedAt)
	return size
}

func (productSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 4; i++ { // Name, Slug, Category, Description
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	if n1, err = varint.Int64.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil { // Image
		return
	}
	n += n1
	if n1, err = skipVector(bs[n:]); err != nil {
		return
	}
	n += n1
	for i := 0; i < 3; i++ { // InsertedAt, UpdatedAt, DeletedAt
		if n1, err = skipTime(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	return
}

func marshalVector(v []float32, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, f := range v {
		n += raw.Float32.Marshal(f, bs[n:])
	}
	return n
}

func unmarshalVector(bs []byte) (v []float32, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		// Corrupted record; never allocate from an untrusted length
		return nil, n, com.ErrNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make([]float32, length)
	var n1 int
	for i := 0; i < length; i++ {
		if v[i], n1, err = raw.Float32.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += n1
	}
	return v, n, nil
}

func sizeVector(v []float32) int {
	size := varint.Int.Size(len(v))
	for _, f := range v {
		size += raw.Float32.Size(f)
	}
	return size
}

func skipVector(bs []byte) (n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return n, err
	}
	if length < 0 {
		return n, com.ErrNegativeLength
	}
	var n1 int
	for i := 0; i < length; i++ {
		if n1, err = raw.Float32.Skip(bs[n:]); err != nil {
			return n, err
		}
		n += n1
	}
	return n, nil
}

func marshalTime(t time.Time, bs []byte) (n int) {
	n = ord.Bool.Marshal(!t.IsZero(), bs)
	if !t.IsZero() {
		n += varint.Int64.Marshal(t.UnixMicro(), bs[n:])
	}
	return n
}

func unmarshalTime(bs []byte) (t time.Time, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return time.Time{}, n, err
	}
	micros, n1, err := varint.Int64.Unmarshal(bs[n:])
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n + n1, nil
}

func sizeTime(t time.Time) int {
	size := ord.Bool.Size(!t.IsZero())
	if !t.IsZero() {
		size += varint.Int64.Size(t.UnixMicro())
	}
	return size
}

func skipTime(bs []byte) (n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return n, err
	}
	n1, err := varint.Int64.Skip(bs[n:])
	return n + n1, err
}
