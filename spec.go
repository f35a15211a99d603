package anyenv

import "fmt"

// A Spec is a backend-native description of an observation
// or action, as served by timestep-protocol backends.
//
// The supported shapes are DiscreteSpec, BoundedSpec,
// ArraySpec, and DictSpec. Anything else fails spec
// conversion with an *UnsupportedSpecError.
type Spec interface{}

// DiscreteSpec describes a scalar drawn from NumValues
// distinct values.
type DiscreteSpec struct {
	NumValues int
	Dtype     Dtype
}

// BoundedSpec describes a numeric array with per-dimension
// minimum and maximum bounds.
//
// Minimum and Maximum may each hold either one bound per
// flattened dimension or a single bound to broadcast over
// the whole shape.
type BoundedSpec struct {
	Shape   []int
	Minimum []float64
	Maximum []float64
	Dtype   Dtype
}

// ArraySpec describes an unbounded numeric array.
type ArraySpec struct {
	Shape []int
	Dtype Dtype
}

// DictSpec is a named mapping of child specs.
type DictSpec map[string]Spec

// SpaceForSpec converts a backend-native spec into a
// canonical Space.
//
// Bounds and dtypes are carried over verbatim; unbounded
// arrays get infinite bounds broadcast over their shape.
func SpaceForSpec(spec Spec) (Space, error) {
	switch spec := spec.(type) {
	case DiscreteSpec:
		return &Discrete{N: spec.NumValues}, nil
	case *DiscreteSpec:
		return &Discrete{N: spec.NumValues}, nil
	case BoundedSpec:
		return boundedSpecSpace(&spec), nil
	case *BoundedSpec:
		return boundedSpecSpace(spec), nil
	case ArraySpec:
		return NewUnboundedBox(spec.Shape, spec.Dtype), nil
	case *ArraySpec:
		return NewUnboundedBox(spec.Shape, spec.Dtype), nil
	case DictSpec:
		children := make(map[string]Space, len(spec))
		for key, child := range spec {
			converted, err := SpaceForSpec(child)
			if err != nil {
				return nil, err
			}
			children[key] = converted
		}
		return NewDict(children), nil
	default:
		return nil, &UnsupportedSpecError{TypeName: fmt.Sprintf("%T", spec)}
	}
}

func boundedSpecSpace(spec *BoundedSpec) *Box {
	size := productOfShape(spec.Shape)
	return &Box{
		Shape: spec.Shape,
		Low:   broadcastBound(spec.Minimum, size),
		High:  broadcastBound(spec.Maximum, size),
		Dtype: spec.Dtype,
	}
}

func broadcastBound(bound []float64, size int) []float64 {
	if len(bound) == size {
		return append([]float64{}, bound...)
	}
	res := make([]float64, size)
	if len(bound) == 1 {
		for i := range res {
			res[i] = bound[0]
		}
	} else {
		copy(res, bound)
	}
	return res
}
