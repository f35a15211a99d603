package anyenv

// UnsupportedSpecError is returned when an observation or
// action spec is not among the recognized variants.
//
// It indicates a misconfiguration on the caller's part and
// should never be retried.
type UnsupportedSpecError struct {
	// TypeName describes the offending spec or value,
	// e.g. "anyenv.DictSpec" or "string".
	TypeName string
}

// Error returns a human-readable message.
func (u *UnsupportedSpecError) Error() string {
	return "unsupported spec type: " + u.TypeName
}

// UnknownWrapperError is returned by Wrap when an explicit
// wrapper kind is not recognized.
//
// It is produced before any backend interaction takes
// place.
type UnknownWrapperError struct {
	Kind string
}

// Error returns a human-readable message.
func (u *UnknownWrapperError) Error() string {
	return "unknown wrapper kind: " + u.Kind
}
