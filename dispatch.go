package anyenv

import (
	"fmt"
	"log"

	"github.com/unixpickle/anyvec"
)

// A Kind selects a wrapper variant.
type Kind string

const (
	// Auto picks a variant from the backend's declared
	// or structural capabilities.
	Auto Kind = "auto"

	Generic        Kind = "generic"
	StructuredStep Kind = "structured-step"
	Accelerator2   Kind = "accelerator-2"
	Accelerator3   Kind = "accelerator-3"
)

// Wrap normalizes a backend behind the uniform Env
// interface.
//
// An explicit kind constructs that variant directly and
// fails if the backend does not satisfy the variant's
// contract. An unrecognized kind fails with an
// *UnknownWrapperError before any backend interaction.
//
// Auto consults the backend's KindReporter tag if it has
// one, then falls back to structural checks in fixed
// priority: Backend, TimestepBackend, DictVecBackend,
// VecBackend.
func Wrap(c anyvec.Creator, backend interface{}, kind Kind) (Env, error) {
	switch kind {
	case Auto:
		return autoWrap(c, backend)
	case Generic:
		b, ok := backend.(Backend)
		if !ok {
			return nil, wrongBackendErr(kind, backend)
		}
		logWrapper(kind)
		return GenericEnv(c, b), nil
	case StructuredStep:
		b, ok := backend.(TimestepBackend)
		if !ok {
			return nil, wrongBackendErr(kind, backend)
		}
		logWrapper(kind)
		return NewTimestepEnv(c, b)
	case Accelerator2:
		b, ok := backend.(VecBackend)
		if !ok {
			return nil, wrongBackendErr(kind, backend)
		}
		logWrapper(kind)
		return AcceleratorEnv(b), nil
	case Accelerator3:
		b, ok := backend.(DictVecBackend)
		if !ok {
			return nil, wrongBackendErr(kind, backend)
		}
		logWrapper(kind)
		return DictAcceleratorEnv(b), nil
	default:
		return nil, &UnknownWrapperError{Kind: string(kind)}
	}
}

func autoWrap(c anyvec.Creator, backend interface{}) (Env, error) {
	if reporter, ok := backend.(KindReporter); ok {
		kind := reporter.WrapperKind()
		if kind == Auto {
			return nil, fmt.Errorf("wrap env: %T reports kind %q", backend, kind)
		}
		return Wrap(c, backend, kind)
	}
	switch b := backend.(type) {
	case Backend:
		logWrapper(Generic)
		return GenericEnv(c, b), nil
	case TimestepBackend:
		logWrapper(StructuredStep)
		return NewTimestepEnv(c, b)
	case DictVecBackend:
		logWrapper(Accelerator3)
		return DictAcceleratorEnv(b), nil
	case VecBackend:
		logWrapper(Accelerator2)
		return AcceleratorEnv(b), nil
	default:
		return nil, fmt.Errorf("wrap env: no wrapper for %T", backend)
	}
}

func wrongBackendErr(kind Kind, backend interface{}) error {
	return fmt.Errorf("wrap env: %T does not satisfy the %s contract", backend, kind)
}

func logWrapper(kind Kind) {
	log.Printf("wrap env: using %s wrapper", kind)
}
