package anyenv

import (
	"math"
	"sort"
)

// A Dtype identifies the element type a backend uses for a
// space's native values.
type Dtype int

const (
	Float64 Dtype = iota
	Float32
	Int32
	Int64
	Uint8
)

// String returns the name of the dtype.
func (d Dtype) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	}
	return "unknown"
}

// A Space is a canonical, backend-agnostic description of
// an observation or action space.
//
// The concrete implementations are *Discrete, *Box, and
// *Dict.
type Space interface {
	// FlatSize is the number of feature dimensions a
	// value from the space occupies once flattened.
	FlatSize() int
}

// Discrete is a space containing N distinct values,
// represented as a single scalar index.
type Discrete struct {
	N int
}

// FlatSize returns 1: discrete values are scalar indices.
func (d *Discrete) FlatSize() int {
	return 1
}

// Box is a continuous space with per-dimension bounds.
//
// Unbounded boxes use -Inf and +Inf bounds.
type Box struct {
	Shape []int

	// Low and High hold one bound per flattened
	// dimension.
	Low  []float64
	High []float64

	Dtype Dtype
}

// NewUnboundedBox creates a Box over the given shape with
// infinite bounds in every dimension.
func NewUnboundedBox(shape []int, dtype Dtype) *Box {
	size := productOfShape(shape)
	low := make([]float64, size)
	high := make([]float64, size)
	for i := range low {
		low[i] = math.Inf(-1)
		high[i] = math.Inf(1)
	}
	return &Box{Shape: shape, Low: low, High: high, Dtype: dtype}
}

// FlatSize returns the product of the box's dimensions.
func (b *Box) FlatSize() int {
	return productOfShape(b.Shape)
}

// Dict is a named mapping from string keys to child
// spaces.
//
// Keys are always iterated in lexicographic order so that
// encoding and decoding visit children deterministically.
type Dict struct {
	children map[string]Space
	keys     []string
}

// NewDict creates a Dict space from the given children.
func NewDict(children map[string]Space) *Dict {
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	copied := make(map[string]Space, len(children))
	for k, v := range children {
		copied[k] = v
	}
	return &Dict{children: copied, keys: keys}
}

// Keys returns the child keys in lexicographic order.
func (d *Dict) Keys() []string {
	return append([]string{}, d.keys...)
}

// Child returns the space stored under key, or nil if the
// key is absent.
func (d *Dict) Child(key string) Space {
	return d.children[key]
}

// FlatSize returns the sum of the children's flat sizes.
func (d *Dict) FlatSize() int {
	var total int
	for _, k := range d.keys {
		total += d.children[k].FlatSize()
	}
	return total
}

func productOfShape(shape []int) int {
	product := 1
	for _, s := range shape {
		product *= s
	}
	return product
}
