package anyenv

import (
	gym "github.com/openai/gym-http-api/binding-go"
	"github.com/unixpickle/essentials"
)

type gymBackend struct {
	client *gym.Client
	id     gym.InstanceID
	render bool

	obsSpace Space
	actSpace Space
}

// GymBackend adapts a remote OpenAI Gym instance into a
// Backend, so it can flow through the generic wrapper.
//
// This fails if the instance uses an unsupported space
// type or if fetching space info fails. If render is true,
// frames are rendered on every step.
func GymBackend(client *gym.Client, id gym.InstanceID, render bool) (b Backend, err error) {
	defer essentials.AddCtxTo("create gym backend", &err)
	actionSpace, err := client.ActionSpace(id)
	if err != nil {
		return nil, err
	}
	obsSpace, err := client.ObservationSpace(id)
	if err != nil {
		return nil, err
	}
	actConv, err := spaceForGym(actionSpace)
	if err != nil {
		return nil, err
	}
	obsConv, err := spaceForGym(obsSpace)
	if err != nil {
		return nil, err
	}
	return &gymBackend{
		client:   client,
		id:       id,
		render:   render,
		obsSpace: obsConv,
		actSpace: actConv,
	}, nil
}

func (g *gymBackend) Reset() (interface{}, error) {
	return g.client.Reset(g.id)
}

func (g *gymBackend) Step(action interface{}) (interface{}, float64, bool,
	Info, error) {
	obs, reward, done, info, err := g.client.Step(g.id, action, g.render)
	infoMap, _ := info.(map[string]interface{})
	return obs, reward, done, Info(infoMap), err
}

// Render is a no-op: the remote API renders during Step
// when the backend was created with render set.
func (g *gymBackend) Render() error {
	return nil
}

func (g *gymBackend) ObservationSpace() Space {
	return g.obsSpace
}

func (g *gymBackend) ActionSpace() Space {
	return g.actSpace
}

func spaceForGym(s *gym.Space) (Space, error) {
	switch s.Name {
	case "Box":
		return &Box{
			Shape: s.Shape,
			Low:   broadcastBound(s.Low, productOfShape(s.Shape)),
			High:  broadcastBound(s.High, productOfShape(s.Shape)),
		}, nil
	case "Discrete":
		return &Discrete{N: s.N}, nil
	default:
		return nil, &UnsupportedSpecError{TypeName: s.Name}
	}
}
