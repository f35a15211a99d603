package anyenv

import (
	"fmt"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

// resetState tracks the accelerator wrappers' one-time
// reset contract.
type resetState int

const (
	notYetReset resetState = iota
	resetDone
)

type accelEnv struct {
	backend VecBackend

	state  resetState
	obsBuf *Tensor
}

// AcceleratorEnv wraps a batched simulation accelerator.
//
// The backend's reset is invoked exactly once across the
// wrapper's lifetime; later Reset calls return the cached
// first observation. The accelerator resets individual
// environments internally as episodes end, so a global
// reset after the first is meaningless.
func AcceleratorEnv(backend VecBackend) Env {
	return &accelEnv{backend: backend}
}

func (a *accelEnv) Reset() (obs *Tensor, err error) {
	defer essentials.AddCtxTo("reset accelerator Env", &err)
	if a.state == notYetReset {
		vec, err := a.backend.Reset()
		if err != nil {
			return nil, err
		}
		a.obsBuf = &Tensor{Data: vec, NumEnvs: a.backend.NumEnvs()}
		a.state = resetDone
	}
	return a.obsBuf, nil
}

func (a *accelEnv) Step(action *Tensor) (obs, reward, done *Tensor,
	info Info, err error) {
	defer essentials.AddCtxTo("step accelerator Env", &err)
	obsVec, rewVec, doneVec, info, err := a.backend.Step(action.Data)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	n := a.backend.NumEnvs()
	a.obsBuf = &Tensor{Data: obsVec, NumEnvs: n}
	return a.obsBuf, &Tensor{Data: rewVec, NumEnvs: n},
		&Tensor{Data: doneVec, NumEnvs: n}, info, nil
}

func (a *accelEnv) Render() error {
	return nil
}

func (a *accelEnv) NumEnvs() int {
	return a.backend.NumEnvs()
}

func (a *accelEnv) StateSpace() Space {
	return stateSpaceOf(a.backend, a.backend.ObservationSpace())
}

func (a *accelEnv) ObservationSpace() Space {
	return a.backend.ObservationSpace()
}

func (a *accelEnv) ActionSpace() Space {
	return a.backend.ActionSpace()
}

type dictAccelEnv struct {
	backend DictVecBackend

	state  resetState
	obsBuf *Tensor
}

// DictAcceleratorEnv wraps a batched simulation
// accelerator whose observations arrive as a named map.
//
// The wrapper unwraps the "obs" entry on both reset and
// step; reset follows the same one-time contract as
// AcceleratorEnv.
func DictAcceleratorEnv(backend DictVecBackend) Env {
	return &dictAccelEnv{backend: backend}
}

func (d *dictAccelEnv) Reset() (obs *Tensor, err error) {
	defer essentials.AddCtxTo("reset accelerator Env", &err)
	if d.state == notYetReset {
		obsDict, err := d.backend.Reset()
		if err != nil {
			return nil, err
		}
		d.obsBuf, err = d.unwrapObs(obsDict)
		if err != nil {
			return nil, err
		}
		d.state = resetDone
	}
	return d.obsBuf, nil
}

func (d *dictAccelEnv) Step(action *Tensor) (obs, reward, done *Tensor,
	info Info, err error) {
	defer essentials.AddCtxTo("step accelerator Env", &err)
	obsDict, rewVec, doneVec, info, err := d.backend.Step(action.Data)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	d.obsBuf, err = d.unwrapObs(obsDict)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	n := d.backend.NumEnvs()
	return d.obsBuf, &Tensor{Data: rewVec, NumEnvs: n},
		&Tensor{Data: doneVec, NumEnvs: n}, info, nil
}

func (d *dictAccelEnv) unwrapObs(obsDict map[string]anyvec.Vector) (*Tensor, error) {
	vec, ok := obsDict["obs"]
	if !ok {
		return nil, fmt.Errorf("observation map has no \"obs\" entry")
	}
	return &Tensor{Data: vec, NumEnvs: d.backend.NumEnvs()}, nil
}

func (d *dictAccelEnv) Render() error {
	return nil
}

func (d *dictAccelEnv) NumEnvs() int {
	return d.backend.NumEnvs()
}

func (d *dictAccelEnv) StateSpace() Space {
	return stateSpaceOf(d.backend, d.backend.ObservationSpace())
}

func (d *dictAccelEnv) ObservationSpace() Space {
	return d.backend.ObservationSpace()
}

func (d *dictAccelEnv) ActionSpace() Space {
	return d.backend.ActionSpace()
}

func stateSpaceOf(backend interface{}, fallback Space) Space {
	if s, ok := backend.(StateSpaced); ok {
		return s.StateSpace()
	}
	return fallback
}
