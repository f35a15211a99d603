package anyenv

import (
	"fmt"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

type genericEnv struct {
	creator anyvec.Creator
	backend Backend
}

// GenericEnv wraps a single-environment backend with
// scalar/array native values.
//
// Actions are converted to the backend's convention
// (discrete spaces get a plain scalar, boxes get flat or
// row-nested float slices depending on the batch size) and
// every returned value is re-wrapped into a (1, -1)
// tensor. Rewards pass through the creator's float type;
// dones become 0/1.
func GenericEnv(c anyvec.Creator, backend Backend) Env {
	return &genericEnv{creator: c, backend: backend}
}

func (g *genericEnv) Reset() (obs *Tensor, err error) {
	defer essentials.AddCtxTo("reset generic Env", &err)
	value, err := g.backend.Reset()
	if err != nil {
		return nil, err
	}
	return g.obsTensor(value)
}

func (g *genericEnv) Step(action *Tensor) (obs, reward, done *Tensor,
	info Info, err error) {
	defer essentials.AddCtxTo("step generic Env", &err)
	native, err := g.convertAction(action)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	value, rew, isDone, info, err := g.backend.Step(native)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	obs, err = g.obsTensor(value)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	doneVal := 0.0
	if isDone {
		doneVal = 1
	}
	return obs, NewTensor(g.creator, 1, []float64{rew}),
		NewTensor(g.creator, 1, []float64{doneVal}), info, nil
}

// convertAction translates an action tensor into the
// backend's native calling convention.
func (g *genericEnv) convertAction(action *Tensor) (interface{}, error) {
	switch space := g.backend.ActionSpace().(type) {
	case *Discrete:
		if action.Data.Len() != 1 {
			return nil, fmt.Errorf("discrete action must be a single scalar, got %d values",
				action.Data.Len())
		}
		return int(action.Floats()[0]), nil
	case *Box:
		if action.NumEnvs == 1 {
			return action.Floats(), nil
		}
		rows := make([][]float64, action.NumEnvs)
		for i := range rows {
			rows[i] = vectorFloats(action.Row(i))
		}
		return rows, nil
	default:
		return nil, &UnsupportedSpecError{TypeName: fmt.Sprintf("%T", space)}
	}
}

// obsTensor re-wraps a native observation into a (1, -1)
// tensor, inferring the value kind from the backend's
// return type.
func (g *genericEnv) obsTensor(value interface{}) (*Tensor, error) {
	if vec, ok := value.(anyvec.Vector); ok {
		return &Tensor{Data: vec, NumEnvs: 1}, nil
	}
	values, err := flattenValue(value)
	if err != nil {
		return nil, err
	}
	return NewTensor(g.creator, 1, values), nil
}

func (g *genericEnv) Render() error {
	return g.backend.Render()
}

func (g *genericEnv) NumEnvs() int {
	return 1
}

func (g *genericEnv) StateSpace() Space {
	return stateSpaceOf(g.backend, g.backend.ObservationSpace())
}

func (g *genericEnv) ObservationSpace() Space {
	return g.backend.ObservationSpace()
}

func (g *genericEnv) ActionSpace() Space {
	return g.backend.ActionSpace()
}
