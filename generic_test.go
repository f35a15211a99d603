package anyenv

import (
	"reflect"
	"testing"

	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/anyvec/anyvec64"
)

type genericBackendFake struct {
	obsSpace Space
	actSpace Space

	resetValue interface{}
	obsValue   interface{}
	reward     float64
	done       bool

	lastAction interface{}
	resets     int
	steps      int
	renders    int
}

func (g *genericBackendFake) Reset() (interface{}, error) {
	g.resets++
	return g.resetValue, nil
}

func (g *genericBackendFake) Step(action interface{}) (interface{}, float64,
	bool, Info, error) {
	g.steps++
	g.lastAction = action
	return g.obsValue, g.reward, g.done, Info{}, nil
}

func (g *genericBackendFake) Render() error {
	g.renders++
	return nil
}

func (g *genericBackendFake) ObservationSpace() Space {
	return g.obsSpace
}

func (g *genericBackendFake) ActionSpace() Space {
	return g.actSpace
}

func TestGenericDiscreteAction(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	backend := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Discrete{N: 3},
		obsValue: []float64{1, 2},
	}
	env := GenericEnv(c, backend)

	_, _, _, _, err := env.Step(NewTensor(c, 1, []float64{2}))
	if err != nil {
		t.Fatal(err)
	}
	action, ok := backend.lastAction.(int)
	if !ok {
		t.Fatalf("expected a plain int action, got %T", backend.lastAction)
	}
	if action != 2 {
		t.Errorf("expected action 2, got %d", action)
	}
}

func TestGenericBoxAction(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	backend := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Box{Shape: []int{2}},
		obsValue: []float64{1, 2},
	}
	env := GenericEnv(c, backend)

	_, _, _, _, err := env.Step(NewTensor(c, 1, []float64{0.5, -0.5}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(backend.lastAction, []float64{0.5, -0.5}) {
		t.Errorf("expected a flat action, got %v", backend.lastAction)
	}

	_, _, _, _, err = env.Step(NewTensor(c, 2, []float64{1, 2, 3, 4}))
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]float64{{1, 2}, {3, 4}}
	if !reflect.DeepEqual(backend.lastAction, expected) {
		t.Errorf("expected row-nested action, got %v", backend.lastAction)
	}
}

func TestGenericUnsupportedAction(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	backend := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: NewDict(nil),
		obsValue: []float64{1, 2},
	}
	env := GenericEnv(c, backend)
	_, _, _, _, err := env.Step(NewTensor(c, 1, []float64{1}))
	if err == nil {
		t.Fatal("expected an unsupported-space error")
	}
}

func TestGenericResetArray(t *testing.T) {
	c := anyvec32.CurrentCreator()
	backend := &genericBackendFake{
		obsSpace:   &Box{Shape: []int{3}},
		actSpace:   &Discrete{N: 2},
		resetValue: []float64{1, 2, 3},
	}
	env := GenericEnv(c, backend)

	obs, err := env.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if obs.NumEnvs != 1 || obs.FeatureDim() != 3 {
		t.Errorf("bad shape: (%d, %d)", obs.NumEnvs, obs.FeatureDim())
	}
	if _, ok := obs.Data.Data().([]float32); !ok {
		t.Errorf("expected float32 data, got %T", obs.Data.Data())
	}
}

func TestGenericResetScalar(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	backend := &genericBackendFake{
		obsSpace:   &Discrete{N: 5},
		actSpace:   &Discrete{N: 2},
		resetValue: 3,
	}
	env := GenericEnv(c, backend)

	obs, err := env.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if obs.NumEnvs != 1 || obs.FeatureDim() != 1 {
		t.Errorf("bad shape: (%d, %d)", obs.NumEnvs, obs.FeatureDim())
	}
	if !reflect.DeepEqual(obs.Floats(), []float64{3}) {
		t.Errorf("bad value: %v", obs.Floats())
	}
}

func TestGenericResetTensorized(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	vec := c.MakeVectorData(c.MakeNumericList([]float64{1, 2}))
	backend := &genericBackendFake{
		obsSpace:   &Box{Shape: []int{2}},
		actSpace:   &Discrete{N: 2},
		resetValue: vec,
	}
	env := GenericEnv(c, backend)

	obs, err := env.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if obs.NumEnvs != 1 || obs.FeatureDim() != 2 {
		t.Errorf("bad shape: (%d, %d)", obs.NumEnvs, obs.FeatureDim())
	}
	if !reflect.DeepEqual(obs.Floats(), []float64{1, 2}) {
		t.Errorf("bad passthrough values: %v", obs.Floats())
	}
}

func TestGenericStepShapes(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	backend := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Discrete{N: 2},
		obsValue: []float64{1, 2},
		reward:   1.5,
		done:     true,
	}
	env := GenericEnv(c, backend)

	_, reward, done, _, err := env.Step(NewTensor(c, 1, []float64{1}))
	if err != nil {
		t.Fatal(err)
	}
	if reward.NumEnvs != 1 || reward.FeatureDim() != 1 {
		t.Errorf("bad reward shape: (%d, %d)", reward.NumEnvs, reward.FeatureDim())
	}
	if !reflect.DeepEqual(reward.Floats(), []float64{1.5}) {
		t.Errorf("bad reward: %v", reward.Floats())
	}
	if !reflect.DeepEqual(done.Floats(), []float64{1}) {
		t.Errorf("bad done: %v", done.Floats())
	}
}

func TestGenericRenderForwards(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	backend := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Discrete{N: 2},
	}
	env := GenericEnv(c, backend)
	if err := env.Render(); err != nil {
		t.Fatal(err)
	}
	if backend.renders != 1 {
		t.Errorf("expected 1 render call, got %d", backend.renders)
	}
	if env.NumEnvs() != 1 {
		t.Errorf("expected 1 env, got %d", env.NumEnvs())
	}
}
