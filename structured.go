package anyenv

import (
	"errors"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

// A TimestepEnv wraps an episodic timestep-protocol
// backend.
//
// Observations are flattened recursively against the
// backend's observation spec; the timestep's last flag
// becomes the done signal; info is always empty. Unlike
// the generic wrapper, the reward keeps the backend's
// value as-is.
type TimestepEnv struct {
	backend TimestepBackend
	codec   *Codec

	obsSpace Space
	actSpace Space
}

// NewTimestepEnv wraps a timestep-protocol backend.
//
// This fails if the backend's observation or action spec
// is not among the recognized shapes.
func NewTimestepEnv(c anyvec.Creator, backend TimestepBackend) (env *TimestepEnv, err error) {
	defer essentials.AddCtxTo("create timestep Env", &err)
	obsSpace, err := SpaceForSpec(backend.ObservationSpec())
	if err != nil {
		return nil, err
	}
	actSpace, err := SpaceForSpec(backend.ActionSpec())
	if err != nil {
		return nil, err
	}
	return &TimestepEnv{
		backend:  backend,
		codec:    &Codec{Creator: c, NumEnvs: numEnvsOf(backend)},
		obsSpace: obsSpace,
		actSpace: actSpace,
	}, nil
}

func (t *TimestepEnv) Reset() (obs *Tensor, err error) {
	defer essentials.AddCtxTo("reset timestep Env", &err)
	ts, err := t.backend.Reset()
	if err != nil {
		return nil, err
	}
	return t.ObservationToTensor(ts.Observation, nil)
}

func (t *TimestepEnv) Step(action *Tensor) (obs, reward, done *Tensor,
	info Info, err error) {
	defer essentials.AddCtxTo("step timestep Env", &err)
	native, err := t.convertAction(action)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ts, err := t.backend.Step(native)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	obs, err = t.ObservationToTensor(ts.Observation, nil)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	doneVal := 0.0
	if ts.Last() {
		doneVal = 1
	}
	n := t.codec.NumEnvs
	return obs, NewTensor(t.codec.Creator, n, []float64{ts.Reward}),
		NewTensor(t.codec.Creator, n, []float64{doneVal}), Info{}, nil
}

// ObservationToTensor flattens a native observation
// against a spec, defaulting to the backend's current
// observation spec when spec is nil.
func (t *TimestepEnv) ObservationToTensor(observation interface{},
	spec Spec) (*Tensor, error) {
	if spec == nil {
		spec = t.backend.ObservationSpec()
	}
	space, err := SpaceForSpec(spec)
	if err != nil {
		return nil, err
	}
	return t.codec.Encode(observation, space)
}

// convertAction decodes an action tensor against the
// backend's live action spec.
func (t *TimestepEnv) convertAction(action *Tensor) (interface{}, error) {
	space, err := SpaceForSpec(t.backend.ActionSpec())
	if err != nil {
		return nil, err
	}
	return t.codec.Decode(action, space)
}

// Render is unsupported: the timestep protocol has no
// render call.
func (t *TimestepEnv) Render() error {
	return errors.New("render timestep Env: not supported")
}

func (t *TimestepEnv) NumEnvs() int {
	return t.codec.NumEnvs
}

// StateSpace is an alias for the observation space.
func (t *TimestepEnv) StateSpace() Space {
	return t.obsSpace
}

func (t *TimestepEnv) ObservationSpace() Space {
	return t.obsSpace
}

func (t *TimestepEnv) ActionSpace() Space {
	return t.actSpace
}

func numEnvsOf(backend interface{}) int {
	if n, ok := backend.(interface{ NumEnvs() int }); ok {
		return n.NumEnvs()
	}
	return 1
}
