// internal/cmdutil/runerror.go
package cmdutil

// RunError marks a failure that happened after argument parsing
// succeeded, so the caller can map it to a runtime exit code instead of
// a usage one.
type RunError struct{ Err error }

func (e *RunError) Error() string { return e.Err.Error() }
func (e *RunError) Unwrap() error { return e.Err }
