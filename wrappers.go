package anyenv

// MaxStepsEnv wraps an Env and forces the done flag high
// once an episode runs longer than MaxSteps timesteps.
//
// It is meant for single-environment wrappers; batched
// accelerator backends manage their own episode
// boundaries.
type MaxStepsEnv struct {
	Env
	MaxSteps int

	steps int
}

// Reset resets the environment and the step counter.
func (m *MaxStepsEnv) Reset() (*Tensor, error) {
	m.steps = 0
	return m.Env.Reset()
}

// Step takes a step in the environment.
func (m *MaxStepsEnv) Step(action *Tensor) (*Tensor, *Tensor, *Tensor,
	Info, error) {
	obs, reward, done, info, err := m.Env.Step(action)
	m.steps++
	if err == nil && m.steps == m.MaxSteps {
		done = onesLike(done)
	}
	return obs, reward, done, info, err
}

func onesLike(t *Tensor) *Tensor {
	ones := make([]float64, t.Data.Len())
	for i := range ones {
		ones[i] = 1
	}
	return NewTensor(t.Data.Creator(), t.NumEnvs, ones)
}
