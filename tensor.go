package anyenv

import (
	"fmt"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anyvec"
)

// A Tensor is a batched numeric container with a leading
// environment dimension of size NumEnvs and a flattened
// trailing feature dimension.
//
// The backing vector stores rows contiguously, one row per
// environment.
type Tensor struct {
	Data    anyvec.Vector
	NumEnvs int
}

// NewTensor creates a Tensor from a row-major slice of
// values.
func NewTensor(c anyvec.Creator, numEnvs int, values []float64) *Tensor {
	if len(values)%numEnvs != 0 {
		panic("value count must divide evenly into rows")
	}
	return &Tensor{
		Data:    c.MakeVectorData(c.MakeNumericList(values)),
		NumEnvs: numEnvs,
	}
}

// FeatureDim returns the size of the trailing feature
// dimension.
func (t *Tensor) FeatureDim() int {
	return t.Data.Len() / t.NumEnvs
}

// Row returns the vector slice holding environment i's
// features.
func (t *Tensor) Row(i int) anyvec.Vector {
	dim := t.FeatureDim()
	return t.Data.Slice(i*dim, (i+1)*dim)
}

// Res wraps the tensor's data as a constant anydiff result
// for consumption by differentiable training code.
func (t *Tensor) Res() anydiff.Res {
	return anydiff.NewConst(t.Data)
}

// Matrix views the tensor as an anydiff matrix with
// NumEnvs rows.
func (t *Tensor) Matrix() *anydiff.Matrix {
	return &anydiff.Matrix{
		Data: t.Res(),
		Rows: t.NumEnvs,
		Cols: t.FeatureDim(),
	}
}

// Floats copies the tensor's contents out as a row-major
// []float64, regardless of the creator's precision.
func (t *Tensor) Floats() []float64 {
	return vectorFloats(t.Data)
}

func vectorFloats(v anyvec.Vector) []float64 {
	switch data := v.Data().(type) {
	case []float64:
		return append([]float64{}, data...)
	case []float32:
		res := make([]float64, len(data))
		for i, x := range data {
			res[i] = float64(x)
		}
		return res
	default:
		panic(fmt.Sprintf("unsupported numeric list: %T", data))
	}
}
