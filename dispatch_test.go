package anyenv

import (
	"testing"

	"github.com/unixpickle/anyvec/anyvec64"
)

type taggedVecBackendFake struct {
	vecBackendFake
}

func (t *taggedVecBackendFake) WrapperKind() Kind {
	return Accelerator2
}

func TestWrapUnknownKind(t *testing.T) {
	backend := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Discrete{N: 2},
	}
	_, err := Wrap(anyvec64.DefaultCreator{}, backend, "bogus")
	wrapErr, ok := err.(*UnknownWrapperError)
	if !ok {
		t.Fatalf("expected *UnknownWrapperError, got %T", err)
	}
	if wrapErr.Kind != "bogus" {
		t.Errorf("bad kind: %s", wrapErr.Kind)
	}
	if backend.resets != 0 || backend.steps != 0 || backend.renders != 0 {
		t.Error("expected no backend interaction")
	}
}

func TestWrapExplicit(t *testing.T) {
	c := anyvec64.DefaultCreator{}

	generic := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Discrete{N: 2},
	}
	env, err := Wrap(c, generic, Generic)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*genericEnv); !ok {
		t.Errorf("expected *genericEnv, got %T", env)
	}

	vec := &vecBackendFake{creator: c, numEnvs: 2}
	env, err = Wrap(c, vec, Accelerator2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*accelEnv); !ok {
		t.Errorf("expected *accelEnv, got %T", env)
	}

	dict := &dictVecBackendFake{
		vecBackendFake: vecBackendFake{creator: c, numEnvs: 2},
	}
	env, err = Wrap(c, dict, Accelerator3)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*dictAccelEnv); !ok {
		t.Errorf("expected *dictAccelEnv, got %T", env)
	}

	timestep := &timestepBackendFake{
		obsSpec: ArraySpec{Shape: []int{2}},
		actSpec: DiscreteSpec{NumValues: 2},
	}
	env, err = Wrap(c, timestep, StructuredStep)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*TimestepEnv); !ok {
		t.Errorf("expected *TimestepEnv, got %T", env)
	}
}

func TestWrapExplicitMismatch(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	vec := &vecBackendFake{creator: c, numEnvs: 2}
	if _, err := Wrap(c, vec, Generic); err == nil {
		t.Error("expected an error wrapping a batched backend as generic")
	}
}

func TestWrapAuto(t *testing.T) {
	c := anyvec64.DefaultCreator{}

	generic := &genericBackendFake{
		obsSpace: &Box{Shape: []int{2}},
		actSpace: &Discrete{N: 2},
	}
	env, err := Wrap(c, generic, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*genericEnv); !ok {
		t.Errorf("expected *genericEnv, got %T", env)
	}

	timestep := &timestepBackendFake{
		obsSpec: ArraySpec{Shape: []int{2}},
		actSpec: DiscreteSpec{NumValues: 2},
	}
	env, err = Wrap(c, timestep, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*TimestepEnv); !ok {
		t.Errorf("expected *TimestepEnv, got %T", env)
	}

	vec := &vecBackendFake{creator: c, numEnvs: 2}
	env, err = Wrap(c, vec, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*accelEnv); !ok {
		t.Errorf("expected *accelEnv, got %T", env)
	}

	dict := &dictVecBackendFake{
		vecBackendFake: vecBackendFake{creator: c, numEnvs: 2},
	}
	env, err = Wrap(c, dict, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*dictAccelEnv); !ok {
		t.Errorf("expected *dictAccelEnv, got %T", env)
	}

	if _, err := Wrap(c, 17, Auto); err == nil {
		t.Error("expected an error for an unrecognized backend")
	}
}

func TestWrapAutoReportedKind(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	tagged := &taggedVecBackendFake{
		vecBackendFake: vecBackendFake{creator: c, numEnvs: 2},
	}
	env, err := Wrap(c, tagged, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.(*accelEnv); !ok {
		t.Errorf("expected the reported accelerator wrapper, got %T", env)
	}
}
