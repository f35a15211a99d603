// Package anyenv normalizes heterogeneous RL simulation
// backends behind one batched-tensor environment
// interface.
//
// Every wrapped environment exposes the same surface:
// reset and step produce observations, rewards, and done
// flags as 2-D batched tensors with a leading num_envs
// dimension, no matter how the underlying backend
// represents its values.
package anyenv
