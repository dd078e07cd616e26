package sentinel

var _ error = Error("")

// Error is an error type backed by a string constant. Unlike errors.New,
// which returns a pointer that must live in a var, Error values can be
// declared const and never reassigned.
//
// Error is comparable, so the default == comparison used by errors.Is
// matches it correctly through wrapped chains.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
