package anyenv

import "github.com/unixpickle/anyvec"

// Info carries auxiliary per-step data from a backend.
type Info map[string]interface{}

// An Env is a wrapped environment with a uniform batched
// interface.
//
// Observations come back as (NumEnvs, featureDim) tensors.
// Rewards and dones come back as (NumEnvs, 1) tensors;
// done values are 0 or 1.
type Env interface {
	Reset() (*Tensor, error)
	Step(action *Tensor) (obs, reward, done *Tensor, info Info, err error)
	Render() error

	NumEnvs() int
	StateSpace() Space
	ObservationSpace() Space
	ActionSpace() Space
}

// A Backend is a single-environment simulation with
// scalar/array native values, in the style of a classic
// gym environment.
type Backend interface {
	Reset() (interface{}, error)
	Step(action interface{}) (obs interface{}, reward float64, done bool,
		info Info, err error)
	Render() error

	ObservationSpace() Space
	ActionSpace() Space
}

// A VecBackend is a simulation accelerator running many
// environments in lockstep with batched tensor I/O.
//
// Such backends reset finished episodes internally, so a
// global reset is only meaningful once per run.
type VecBackend interface {
	Reset() (anyvec.Vector, error)
	Step(action anyvec.Vector) (obs, reward, done anyvec.Vector,
		info Info, err error)

	NumEnvs() int
	ObservationSpace() Space
	ActionSpace() Space
}

// A DictVecBackend is a simulation accelerator whose
// observations come back as a named map; the wrapper
// extracts the "obs" entry.
type DictVecBackend interface {
	Reset() (map[string]anyvec.Vector, error)
	Step(action anyvec.Vector) (obs map[string]anyvec.Vector,
		reward, done anyvec.Vector, info Info, err error)

	NumEnvs() int
	ObservationSpace() Space
	ActionSpace() Space
}

// A StepType marks a timestep's position in an episode.
type StepType int

const (
	StepFirst StepType = iota
	StepMid
	StepLast
)

// A Timestep is one step of an episodic timestep-protocol
// backend.
type Timestep struct {
	StepType    StepType
	Reward      float64
	Discount    float64
	Observation interface{}
}

// First reports whether this is the first step of an
// episode.
func (t *Timestep) First() bool {
	return t.StepType == StepFirst
}

// Last reports whether this step ends the episode.
func (t *Timestep) Last() bool {
	return t.StepType == StepLast
}

// A TimestepBackend is an episodic simulation speaking the
// timestep protocol, with spec-described native values.
type TimestepBackend interface {
	Reset() (*Timestep, error)
	Step(action interface{}) (*Timestep, error)

	ObservationSpec() Spec
	ActionSpec() Spec
}

// StateSpaced is implemented by backends that expose a
// state space distinct from their observation space.
//
// Wrappers fall back to the observation space otherwise.
type StateSpaced interface {
	StateSpace() Space
}

// KindReporter is implemented by backends that declare
// which wrapper variant should handle them.
//
// Wrap consults it before any structural inspection when
// the requested kind is Auto.
type KindReporter interface {
	WrapperKind() Kind
}
