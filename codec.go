package anyenv

import (
	"fmt"

	"github.com/unixpickle/anyvec"
)

// A Codec converts raw backend values to and from batched
// Tensors according to a canonical Space.
//
// Both directions are pure: the only side effect is vector
// allocation through the Creator.
type Codec struct {
	Creator anyvec.Creator
	NumEnvs int
}

// Encode converts a raw backend value into a Tensor of
// shape (NumEnvs, space.FlatSize()).
//
// Discrete and box leaves accept scalars, flat or nested
// numeric slices, anyvec vectors, and Tensors. Dict values
// must be map[string]interface{}; their children are
// encoded in lexicographic key order and concatenated
// along the feature axis.
func (c *Codec) Encode(value interface{}, space Space) (*Tensor, error) {
	switch space := space.(type) {
	case *Discrete, *Box:
		return c.encodeLeaf(value, space)
	case *Dict:
		return c.encodeDict(value, space)
	default:
		return nil, &UnsupportedSpecError{TypeName: fmt.Sprintf("%T", space)}
	}
}

// Decode converts an action Tensor back into the backend's
// native representation.
//
// Discrete spaces yield a single scalar int, assuming
// single-action submission. Box spaces yield the flattened
// row-major values in the space's element type.
func (c *Codec) Decode(t *Tensor, space Space) (interface{}, error) {
	switch space := space.(type) {
	case *Discrete:
		values := t.Floats()
		if len(values) != 1 {
			return nil, fmt.Errorf("discrete action must be a single scalar, got %d values",
				len(values))
		}
		return int(values[0]), nil
	case *Box:
		values := t.Floats()
		if len(values) != space.FlatSize() {
			return nil, fmt.Errorf("action has %d values but space has %d dimensions",
				len(values), space.FlatSize())
		}
		return castBoxValues(values, space.Dtype), nil
	default:
		return nil, &UnsupportedSpecError{TypeName: fmt.Sprintf("%T", space)}
	}
}

func (c *Codec) encodeLeaf(value interface{}, space Space) (*Tensor, error) {
	values, err := flattenValue(value)
	if err != nil {
		return nil, err
	}
	expected := c.NumEnvs * space.FlatSize()
	if len(values) != expected {
		return nil, fmt.Errorf("value has %d elements but (%d, %d) requires %d",
			len(values), c.NumEnvs, space.FlatSize(), expected)
	}
	return NewTensor(c.Creator, c.NumEnvs, values), nil
}

func (c *Codec) encodeDict(value interface{}, space *Dict) (*Tensor, error) {
	mapping, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("dict space requires map[string]interface{}, got %T", value)
	}
	var children []*Tensor
	for _, key := range space.Keys() {
		child, err := c.Encode(mapping[key], space.Child(key))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return c.concatFeatures(children), nil
}

// concatFeatures joins (NumEnvs, f_i) tensors into one
// (NumEnvs, sum f_i) tensor, keeping rows contiguous.
func (c *Codec) concatFeatures(children []*Tensor) *Tensor {
	if c.NumEnvs == 1 {
		parts := make([]anyvec.Vector, len(children))
		for i, child := range children {
			parts[i] = child.Data
		}
		return &Tensor{Data: c.Creator.Concat(parts...), NumEnvs: 1}
	}
	var rows []anyvec.Vector
	for env := 0; env < c.NumEnvs; env++ {
		for _, child := range children {
			rows = append(rows, child.Row(env))
		}
	}
	return &Tensor{Data: c.Creator.Concat(rows...), NumEnvs: c.NumEnvs}
}

// flattenValue turns a native backend value into a flat
// row-major []float64.
func flattenValue(value interface{}) ([]float64, error) {
	switch value := value.(type) {
	case float64:
		return []float64{value}, nil
	case float32:
		return []float64{float64(value)}, nil
	case int:
		return []float64{float64(value)}, nil
	case int64:
		return []float64{float64(value)}, nil
	case []float64:
		return append([]float64{}, value...), nil
	case []float32:
		res := make([]float64, len(value))
		for i, x := range value {
			res[i] = float64(x)
		}
		return res, nil
	case []int:
		res := make([]float64, len(value))
		for i, x := range value {
			res[i] = float64(x)
		}
		return res, nil
	case [][]float64:
		var joined []float64
		for _, row := range value {
			joined = append(joined, row...)
		}
		return joined, nil
	case [][][]float64:
		var joined [][]float64
		for _, plane := range value {
			joined = append(joined, plane...)
		}
		return flattenValue(joined)
	case anyvec.Vector:
		return vectorFloats(value), nil
	case *Tensor:
		return value.Floats(), nil
	default:
		return nil, &UnsupportedSpecError{TypeName: fmt.Sprintf("%T", value)}
	}
}

func castBoxValues(values []float64, dtype Dtype) interface{} {
	switch dtype {
	case Float32:
		res := make([]float32, len(values))
		for i, x := range values {
			res[i] = float32(x)
		}
		return res
	case Int32, Int64:
		res := make([]int64, len(values))
		for i, x := range values {
			res[i] = int64(x)
		}
		return res
	case Uint8:
		res := make([]uint8, len(values))
		for i, x := range values {
			res[i] = uint8(x)
		}
		return res
	default:
		return values
	}
}
